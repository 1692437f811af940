// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package category

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/urfave/cli/v3"
)

const (
	pathArg = "path"
	noteArg = "note"
)

// New returns the category command, which sets or replaces the free-text
// note attached to a category path. The category does not need any
// registered scripts; the note is purely descriptive metadata for the tree
// view.
func New() *cli.Command {
	return &cli.Command{
		Name:        "category",
		Usage:       "shelf category <path> <note>",
		Description: "Attach a note to a category path, creating the category entry if needed.",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      pathArg,
				UsageText: "CATEGORY",
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

	path := registry.NormalizeCategory(cmd.StringArg(pathArg))
	if path == "" {
		return cli.Exit("Usage: shelf category <path> <note>", 1)
	}

	store := registry.NewStore(state.Fs, state.Paths.DataFile)
	doc := store.Load(ctx)

	doc.Categories[path] = cmd.StringArg(noteArg)

	if err := store.Save(ctx, doc); err != nil {
		return cli.Exit("Save failed: "+err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "Category '%s' note updated.\n", path)

	return nil
}
