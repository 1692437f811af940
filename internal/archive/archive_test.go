// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveCopiesIntoCategoryTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/ping.sh", []byte("#!/bin/sh\nping -c1 $1\n"), 0o755))

	a := New(fs, "/shelf/storage")
	backup, err := a.Archive(context.Background(), "/tmp/ping.sh", "tools/net")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/shelf/storage", "tools", "net", "ping.sh"), backup)

	b, err := afero.ReadFile(fs, backup)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nping -c1 $1\n", string(b))
}

func TestArchiveNormalizesBackslashCategories(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/ping.sh", []byte("x"), 0o755))

	a := New(fs, "/shelf/storage")
	backup, err := a.Archive(context.Background(), "/tmp/ping.sh", `tools\net`)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/shelf/storage", "tools", "net", "ping.sh"), backup)
}

func TestArchivePreservesModTime(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/ping.sh", []byte("x"), 0o755))

	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, fs.Chtimes("/tmp/ping.sh", mtime, mtime))

	a := New(fs, "/shelf/storage")
	backup, err := a.Archive(context.Background(), "/tmp/ping.sh", "tools")
	require.NoError(t, err)

	info, err := fs.Stat(backup)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestArchiveMissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()

	a := New(fs, "/shelf/storage")
	_, err := a.Archive(context.Background(), "/tmp/nope.sh", "tools")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestArchiveDirectorySource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tmp/dir", 0o755))

	a := New(fs, "/shelf/storage")
	_, err := a.Archive(context.Background(), "/tmp/dir", "tools")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceIsDir)
}

func TestArchiveReadOnlyStorage(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/tmp/ping.sh", []byte("x"), 0o755))

	a := New(afero.NewReadOnlyFs(base), "/shelf/storage")
	_, err := a.Archive(context.Background(), "/tmp/ping.sh", "tools")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMkdir)
}

func TestArchiveSameCategoryOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a/ping.sh", []byte("first"), 0o755))
	require.NoError(t, afero.WriteFile(fs, "/b/ping.sh", []byte("second"), 0o755))

	a := New(fs, "/shelf/storage")
	ctx := context.Background()

	_, err := a.Archive(ctx, "/a/ping.sh", "tools")
	require.NoError(t, err)

	backup, err := a.Archive(ctx, "/b/ping.sh", "tools")
	require.NoError(t, err)

	b, err := afero.ReadFile(fs, backup)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}
