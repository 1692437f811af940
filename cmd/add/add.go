// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package add

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/internal/archive"
	"github.com/matt-FFFFFF/shelf/internal/ctxlog"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	categoryArg = "category"
	fileArg     = "file"
	noteArg     = "note"
)

// New returns the add command, which archives a script and registers it
// under an alias derived from its filename.
func New() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "shelf add <category> <file> [note]",
		Description: `Copy the file into the storage tree under the category path and register it
under an alias derived from its filename. The file may be a local path or a
go-getter URL (https, git, ...). If the note is omitted and stdin is a
terminal, you are prompted for one.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      categoryArg,
				UsageText: "CATEGORY",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringArg{
				Name:      fileArg,
				UsageText: "FILE",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringArg{
				Name:      noteArg,
				UsageText: "[NOTE]",
			},
		},
		Action: actionFunc,
	}
}

// stdinIsTerminal and promptNote are variables so tests can stub them.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var promptNote = func() (string, error) {
	line := liner.NewLiner()
	defer line.Close() //nolint:errcheck

	line.SetCtrlCAborts(true)

	return line.Prompt("note> ")
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	state, ok := cmdstate.From(ctx)
	if !ok {
		return cli.Exit("internal error: no command state in context", 1)
	}

	category := registry.NormalizeCategory(cmd.StringArg(categoryArg))
	file := cmd.StringArg(fileArg)

	if category == "" || file == "" {
		return cli.Exit("Usage: shelf add <category> <file> [note]", 1)
	}

	note := cmd.StringArg(noteArg)
	if note == "" && stdinIsTerminal() {
		entered, err := promptNote()
		if err != nil && !errors.Is(err, liner.ErrPromptAborted) {
			return cli.Exit("Failed to read note: "+err.Error(), 1)
		}

		note = entered
	}

	src := file
	remote := archive.IsRemote(file)

	if remote {
		fetched, cleanup, err := archive.Fetch(ctx, file)
		if err != nil {
			return cli.Exit("Fetch failed: "+err.Error(), 1)
		}

		defer cleanup()

		src = fetched
	} else {
		abs, err := filepath.Abs(file)
		if err != nil {
			return cli.Exit("Cannot resolve path: "+err.Error(), 1)
		}

		src = abs
	}

	archiver := archive.New(state.Fs, state.Paths.StorageDir)

	backup, err := archiver.Archive(ctx, src, category)
	if err != nil {
		// Nothing has been registered yet, so the registry is untouched.
		return cli.Exit("Archive failed: "+err.Error(), 1)
	}

	// For remote sources the archived copy is the script; there is no local
	// original to point at.
	recordPath := src
	if remote {
		recordPath = backup
	}

	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	store := registry.NewStore(state.Fs, state.Paths.DataFile)
	doc := store.Load(ctx)

	alias := doc.NextAlias(stem, recordPath)

	doc.Scripts[alias] = registry.Script{
		Path:     recordPath,
		Backup:   backup,
		Category: category,
		Note:     note,
	}

	if _, ok := doc.Categories[category]; !ok {
		doc.Categories[category] = ""
	}

	if err := store.Save(ctx, doc); err != nil {
		return cli.Exit("Save failed: "+err.Error(), 1)
	}

	ctxlog.Debug(ctx, "script added", "alias", alias, "category", category, "backup", backup)
	fmt.Fprintf(cmd.Writer, "Added '%s' to %s (archived at %s)\n", alias, category, backup)

	return nil
}
