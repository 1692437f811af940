// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

// ErrFetch is returned when a remote source cannot be retrieved.
var ErrFetch = errors.New("failed to fetch remote source")

// tempDir is a variable to allow tests to redirect temporary files.
var tempDir = os.TempDir

// IsRemote reports whether src should be fetched with go-getter rather than
// read from the local filesystem.
func IsRemote(src string) bool {
	return strings.Contains(src, "://")
}

// Fetch retrieves a remote file using Hashicorp's go-getter and returns the
// local path of the downloaded copy together with a cleanup function that
// removes it. The file keeps its original base name so the archived copy is
// named after the script, not a temp file.
func Fetch(ctx context.Context, src string) (string, func(), error) {
	tmp, err := os.MkdirTemp(tempDir(), "shelf-getter-*")
	if err != nil {
		return "", nil, errors.Join(ErrFetch, err)
	}

	cleanup := func() {
		os.RemoveAll(tmp) //nolint:errcheck
	}

	wd, err := os.Getwd()
	if err != nil {
		cleanup()
		return "", nil, errors.Join(ErrFetch, err)
	}

	name := filepath.Base(src)
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}

	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(tmp, name),
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	if _, err := cli.Get(ctx, req); err != nil {
		cleanup()
		return "", nil, errors.Join(ErrFetch, err)
	}

	return filepath.Join(tmp, name), cleanup, nil
}
