// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/matt-FFFFFF/shelf/internal/ctxlog"
	"github.com/spf13/afero"
)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

var (
	// ErrSave is returned when the registry cannot be persisted.
	ErrSave = errors.New("failed to save registry")
	// ErrMarshal is returned when the registry cannot be serialized.
	ErrMarshal = errors.New("failed to marshal registry")
)

// Store loads and saves the registry document at a fixed path.
// The filesystem is abstracted so tests can run against a memory fs.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a Store for the given filesystem and data file path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the persisted document.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted registry. A missing, unreadable or corrupt file
// yields a fresh empty document; Load never fails the caller.
func (s *Store) Load(ctx context.Context) Document {
	doc := NewDocument()

	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		ctxlog.Debug(ctx, "registry not loaded, starting empty", "path", s.path, "error", err)
		return doc
	}

	if err := json.Unmarshal(b, &doc); err != nil {
		ctxlog.Warn(ctx, "registry file is corrupt, starting empty", "path", s.path, "error", err)
		return NewDocument()
	}

	if err := doc.validate(); err != nil {
		ctxlog.Debug(ctx, "registry validation dropped records", "error", err)
	}

	return doc
}

// Save serializes the full document as indented JSON and atomically replaces
// the data file: the content is written to a temporary file in the same
// directory and renamed over the target, so a crash mid-write cannot truncate
// the registry.
func (s *Store) Save(ctx context.Context, doc Document) error {
	b, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, dirMode); err != nil {
		return errors.Join(ErrSave, err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, b, fileMode); err != nil {
		return errors.Join(ErrSave, err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: renaming %s: %w", ErrSave, tmp, err)
	}

	ctxlog.Debug(ctx, "registry saved", "path", s.path, "scripts", len(doc.Scripts), "categories", len(doc.Categories))

	return nil
}
