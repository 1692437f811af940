// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/internal/ctxlog"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/matt-FFFFFF/shelf/internal/scriptrun"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// New returns the run command, which runs a registered script by alias.
// Flag parsing is skipped: everything after the alias belongs to the script.
func New() *cli.Command {
	return &cli.Command{
		Name:            "run",
		Usage:           "shelf run <alias> [args...]",
		Description:     "Run a registered script by alias, passing any remaining arguments through untouched.",
		SkipFlagParsing: true,
		Action:          actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("Please provide an alias to run", 1)
	}

	return Execute(ctx, cmd.Writer, args[0], args[1:])
}

// Execute resolves alias and runs the script with the given pass-through
// arguments. It is shared by the run and pick commands.
//
// A completed run returns nil regardless of the child's exit code: the
// manager is informational only and exits zero so that shell aliases keep
// working. Failures before the script starts (unknown alias, missing file)
// do exit non-zero.
func Execute(ctx context.Context, w io.Writer, alias string, passArgs []string) error {
	state, ok := cmdstate.From(ctx)
	if !ok {
		return cli.Exit("internal error: no command state in context", 1)
	}

	store := registry.NewStore(state.Fs, state.Paths.DataFile)
	doc := store.Load(ctx)

	resolved, ok := doc.Resolve(alias)
	if !ok {
		return cli.Exit(fmt.Sprintf("Error: no script registered as '%s'", alias), 1)
	}

	rec := doc.Scripts[resolved]

	exists, err := afero.Exists(state.Fs, rec.Path)
	if err != nil || !exists {
		msg := fmt.Sprintf("Error: original file missing: %s", rec.Path)
		if rec.Backup != "" {
			msg += fmt.Sprintf("\nHint: a backup copy exists: %s", rec.Backup)
		}

		return cli.Exit(msg, 1)
	}

	res := (&scriptrun.Command{
		Path: rec.Path,
		Args: passArgs,
	}).Run(ctx)

	switch {
	case res.Interrupted:
		ctxlog.Debug(ctx, "script interrupted", "alias", resolved)

	case res.Err != nil:
		fmt.Fprintf(w, "Run failed: %v\n", res.Err)

	case res.ExitCode != 0:
		ctxlog.Debug(ctx, "script exited non-zero", "alias", resolved, "exitCode", res.ExitCode)
	}

	return nil
}
