// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
//
// The argv surface is unusual: the first token may be a registered script
// alias rather than a subcommand, and the original single-dash management
// spellings (-l, -add, -cat, -n) are still accepted. Dispatch normalizes all
// of that into the canonical command tree before urfave/cli sees it.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/shelf/cmd/add"
	"github.com/matt-FFFFFF/shelf/cmd/category"
	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/cmd/list"
	"github.com/matt-FFFFFF/shelf/cmd/note"
	"github.com/matt-FFFFFF/shelf/cmd/pick"
	"github.com/matt-FFFFFF/shelf/cmd/run"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/urfave/cli/v3"
)

// ErrUnknownCommand is returned when the first argv token is neither a
// registered alias nor a recognized command.
var ErrUnknownCommand = errors.New("unknown command")

// Version is the version string reported by --version. Set by main.
var Version = "dev"

// legacyCommands maps the original single-dash spellings to subcommands.
var legacyCommands = map[string]string{
	"-l":   "list",
	"-add": "add",
	"-cat": "category",
	"-n":   "note",
}

// New builds the root command. A command tree holds parse state, so a fresh
// one is built for every invocation.
func New(state *cmdstate.State) *cli.Command {
	root := &cli.Command{
		Commands: []*cli.Command{
			run.New(),
			list.New(),
			add.New(),
			category.New(),
			note.New(),
			pick.New(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "shelf",
		Description: `Shelf catalogs your local scripts under short aliases, archives a copy of
each one into a category tree, and dispatches execution by alias. Running
"shelf <alias>" executes the registered script with every remaining argument
passed through untouched.`,
		Usage:     "shelf <alias> [args...]",
		Version:   Version,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		EnableShellCompletion: true,
	}

	if state != nil && state.Out != nil {
		root.Writer = state.Out
	}

	if state != nil && state.Err != nil {
		root.ErrWriter = state.Err
	}

	return root
}

// Dispatch decides whether argv names a registered script or a management
// command, then delegates to the command tree.
//
// Alias resolution runs first: if the first token resolves (exactly, or via
// the dash-stripping fallback), everything after it is treated as opaque
// pass-through arguments for the script.
func Dispatch(ctx context.Context, state *cmdstate.State, argv []string) error {
	ctx = cmdstate.With(ctx, state)

	store := registry.NewStore(state.Fs, state.Paths.DataFile)
	doc := store.Load(ctx)

	root := New(state)

	rewritten, err := rewriteArgs(root, doc, argv)
	if err != nil {
		return err
	}

	return root.Run(ctx, rewritten)
}

func rewriteArgs(root *cli.Command, doc registry.Document, argv []string) ([]string, error) {
	out := []string{argv[0]}
	args := argv[1:]

	if len(args) == 0 {
		return append(out, "--help"), nil
	}

	first := args[0]

	if alias, ok := doc.Resolve(first); ok {
		out = append(out, "run", alias)
		return append(out, args[1:]...), nil
	}

	if name, ok := legacyCommands[first]; ok {
		out = append(out, name)
		return append(out, args[1:]...), nil
	}

	switch first {
	case "-h", "--help":
		return append(out, "--help"), nil
	case "-v", "--version":
		return append(out, "--version"), nil
	}

	if isCommand(root, first) {
		return append(out, args...), nil
	}

	return nil, fmt.Errorf("%w: '%s'", ErrUnknownCommand, first)
}

func isCommand(root *cli.Command, name string) bool {
	if name == "help" || name == "completion" {
		return true
	}

	for _, c := range root.Commands {
		if c.Name == name {
			return true
		}
	}

	return false
}
