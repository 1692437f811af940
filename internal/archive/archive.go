// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/matt-FFFFFF/shelf/internal/ctxlog"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/spf13/afero"
)

const dirMode = 0o755

var (
	// ErrSourceNotFound is returned when the source file does not exist.
	ErrSourceNotFound = errors.New("source file does not exist")
	// ErrSourceIsDir is returned when the source is a directory.
	ErrSourceIsDir = errors.New("source is a directory, not a file")
	// ErrMkdir is returned when the category directory chain cannot be created.
	ErrMkdir = errors.New("failed to create category directory")
	// ErrCopy is returned when the source cannot be copied into the archive.
	ErrCopy = errors.New("failed to copy file into archive")
)

// Archiver copies source files into a category-derived directory tree under a
// fixed storage root. Archived files keep their original filename; a second
// archive of the same filename into the same category overwrites the first.
type Archiver struct {
	fs   afero.Fs
	root string
}

// New creates an Archiver that stores copies under root on the given filesystem.
func New(fs afero.Fs, root string) *Archiver {
	return &Archiver{fs: fs, root: root}
}

// Root returns the storage root directory.
func (a *Archiver) Root() string {
	return a.root
}

// Archive copies src into the directory derived from category and returns the
// backup path. The category path is normalized to "/" separators and each
// segment becomes a subdirectory. The copy preserves the source's permission
// bits and modification time.
//
// Any failure leaves the registry untouched: callers must not register the
// script unless Archive succeeds.
func (a *Archiver) Archive(ctx context.Context, src, category string) (string, error) {
	info, err := a.fs.Stat(src)
	if err != nil {
		return "", errors.Join(ErrSourceNotFound, err)
	}

	if info.IsDir() {
		return "", ErrSourceIsDir
	}

	segments := strings.Split(registry.NormalizeCategory(category), "/")
	dir := filepath.Join(append([]string{a.root}, segments...)...)

	if err := a.fs.MkdirAll(dir, dirMode); err != nil {
		return "", errors.Join(ErrMkdir, err)
	}

	dst := filepath.Join(dir, filepath.Base(src))

	b, err := afero.ReadFile(a.fs, src)
	if err != nil {
		return "", errors.Join(ErrCopy, err)
	}

	if err := afero.WriteFile(a.fs, dst, b, info.Mode().Perm()); err != nil {
		return "", errors.Join(ErrCopy, err)
	}

	// Best effort: not every filesystem lets us set times.
	if err := a.fs.Chtimes(dst, time.Now(), info.ModTime()); err != nil {
		ctxlog.Debug(ctx, "could not preserve modification time", "path", dst, "error", err)
	}

	ctxlog.Debug(ctx, "archived", "src", src, "dst", dst, "category", category)

	return dst, nil
}
