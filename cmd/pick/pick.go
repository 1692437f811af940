// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package pick

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/cmd/run"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/matt-FFFFFF/shelf/internal/treeview"
	"github.com/matt-FFFFFF/shelf/internal/tui"
	"github.com/urfave/cli/v3"
)

// New returns the pick command, which opens an interactive, filterable list
// of registered scripts and runs the selected one.
func New() *cli.Command {
	return &cli.Command{
		Name:        "pick",
		Usage:       "shelf pick",
		Description: "Interactively choose a registered script and run it.",
		Action:      actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	state, ok := cmdstate.From(ctx)
	if !ok {
		return cli.Exit("internal error: no command state in context", 1)
	}

	store := registry.NewStore(state.Fs, state.Paths.DataFile)
	doc := store.Load(ctx)

	if len(doc.Scripts) == 0 {
		fmt.Fprintln(cmd.Writer, treeview.EmptyMessage)
		return nil
	}

	alias, selected, err := tui.Pick(doc)
	if err != nil {
		return cli.Exit("Picker failed: "+err.Error(), 1)
	}

	if !selected {
		return nil
	}

	return run.Execute(ctx, cmd.Writer, alias, nil)
}
