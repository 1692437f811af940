// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate carries per-invocation dependencies through the context so
// that every subcommand sees the same filesystem and paths. Tests inject a
// memory filesystem and a scratch directory the same way.
package cmdstate

import (
	"context"
	"io"
	"os"

	"github.com/matt-FFFFFF/shelf/internal/shelfpath"
	"github.com/spf13/afero"
)

type ctxKey struct{}

// State holds the dependencies shared by all subcommands.
type State struct {
	// Fs is the filesystem used for the registry and the archive.
	Fs afero.Fs
	// Paths are the resolved data file and storage locations.
	Paths shelfpath.Paths
	// Out and Err are the command output streams.
	Out io.Writer
	Err io.Writer
}

// New builds the production state: the OS filesystem, paths resolved beside
// the executable (or SHELF_HOME), and the process standard streams.
func New() (*State, error) {
	paths, err := shelfpath.Resolve()
	if err != nil {
		return nil, err
	}

	return &State{
		Fs:    afero.NewOsFs(),
		Paths: paths,
		Out:   os.Stdout,
		Err:   os.Stderr,
	}, nil
}

// With returns a context carrying the state.
func With(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// From extracts the state from the context.
func From(ctx context.Context) (*State, bool) {
	s, ok := ctx.Value(ctxKey{}).(*State)
	return s, ok && s != nil
}
