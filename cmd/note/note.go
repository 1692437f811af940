// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package note

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/urfave/cli/v3"
)

const (
	aliasArg = "alias"
	noteArg  = "note"
)

// New returns the note command, which replaces the note on an existing
// script record.
func New() *cli.Command {
	return &cli.Command{
		Name:        "note",
		Usage:       "shelf note <alias> <note>",
		Description: "Update the note shown for a registered script.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      aliasArg,
				UsageText: "ALIAS",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringArg{
				Name:      noteArg,
				UsageText: "NOTE",
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	state, ok := cmdstate.From(ctx)
	if !ok {
		return cli.Exit("internal error: no command state in context", 1)
	}

	alias := cmd.StringArg(aliasArg)
	if alias == "" {
		return cli.Exit("Usage: shelf note <alias> <note>", 1)
	}

	store := registry.NewStore(state.Fs, state.Paths.DataFile)
	doc := store.Load(ctx)

	rec, ok := doc.Scripts[alias]
	if !ok {
		return cli.Exit(fmt.Sprintf("Error: no script registered as '%s'", alias), 1)
	}

	rec.Note = cmd.StringArg(noteArg)
	doc.Scripts[alias] = rec

	if err := store.Save(ctx, doc); err != nil {
		return cli.Exit("Save failed: "+err.Error(), 1)
	}

	fmt.Fprintln(cmd.Writer, "Note updated.")

	return nil
}
