// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/internal/color"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/matt-FFFFFF/shelf/internal/treeview"
	"github.com/urfave/cli/v3"
)

const (
	outputFlag = "output"

	outputTree = "tree"
	outputJSON = "json"
	outputYAML = "yaml"
)

// ErrMarshalRegistry is returned when the registry cannot be serialized for output.
var ErrMarshalRegistry = errors.New("failed to marshal registry")

// New returns the list command, which renders the registered scripts grouped
// by category.
func New() *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "shelf list [--output tree|json|yaml]",
		Description: "Render the registered scripts as a category tree, or dump the registry as JSON or YAML.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        outputFlag,
				Aliases:     []string{"o"},
				Usage:       "Output format: tree, json or yaml",
				Value:       outputTree,
				DefaultText: outputTree,
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

	store := registry.NewStore(state.Fs, state.Paths.DataFile)
	doc := store.Load(ctx)

	switch cmd.String(outputFlag) {
	case outputTree:
		treeview.Render(cmd.Writer, doc)
		return nil

	case outputJSON:
		return writeJSON(cmd, doc)

	case outputYAML:
		b, err := yaml.Marshal(doc)
		if err != nil {
			return errors.Join(ErrMarshalRegistry, err)
		}

		fmt.Fprint(cmd.Writer, string(b))

		return nil

	default:
		return cli.Exit(fmt.Sprintf("Unknown output format '%s', expected tree, json or yaml", cmd.String(outputFlag)), 1)
	}
}

func writeJSON(cmd *cli.Command, doc registry.Document) error {
	// colorjson formats generic maps, so round-trip through encoding/json.
	b, err := json.Marshal(doc)
	if err != nil {
		return errors.Join(ErrMarshalRegistry, err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return errors.Join(ErrMarshalRegistry, err)
	}

	f := colorjson.NewFormatter()
	f.Indent = 2
	f.DisabledColor = !color.Enabled()

	out, err := f.Marshal(m)
	if err != nil {
		return errors.Join(ErrMarshalRegistry, err)
	}

	fmt.Fprintln(cmd.Writer, string(out))

	return nil
}
