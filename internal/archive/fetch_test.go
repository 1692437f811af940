// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/scripts/ping.sh"))
	assert.True(t, IsRemote("git::https://example.com/repo.git//ping.sh"))
	assert.False(t, IsRemote("/tmp/ping.sh"))
	assert.False(t, IsRemote("ping.sh"))
}

func TestFetchLocalFileURL(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "ping.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755))

	dstRoot := t.TempDir()
	stubs := gostub.Stub(&tempDir, func() string { return dstRoot })
	defer stubs.Reset()

	got, cleanup, err := Fetch(context.Background(), "file://"+src)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "ping.sh", filepath.Base(got))

	b, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(b))

	// The download must land under our stubbed temp root.
	rel, err := filepath.Rel(dstRoot, got)
	require.NoError(t, err)
	assert.False(t, filepath.IsAbs(rel))
}

func TestFetchCleanupRemovesDownload(t *testing.T) {
	srcDir := t.TempDir()
	src := filepath.Join(srcDir, "ping.sh")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o755))

	got, cleanup, err := Fetch(context.Background(), "file://"+src)
	require.NoError(t, err)

	cleanup()

	_, err = os.Stat(got)
	assert.True(t, os.IsNotExist(err))
}
