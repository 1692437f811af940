// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/internal/registry"
	"github.com/matt-FFFFFF/shelf/internal/shelfpath"
	"github.com/matt-FFFFFF/shelf/internal/treeview"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func seededContext(t *testing.T) context.Context {
	t.Helper()

	fs := afero.NewMemMapFs()
	state := &cmdstate.State{
		Fs:    fs,
		Paths: shelfpath.New("/home/shelf"),
	}

	doc := registry.NewDocument()
	doc.Scripts["ping"] = registry.Script{
		Path:     "/scripts/ping.sh",
		Category: "tools/net",
		Note:     "latency check",
	}
	doc.Categories["tools"] = "utility belt"

	store := registry.NewStore(fs, state.Paths.DataFile)
	require.NoError(t, store.Save(context.Background(), doc))

	return cmdstate.With(context.Background(), state)
}

func runList(ctx context.Context, out *bytes.Buffer, args ...string) error {
	c := New()
	c.Writer = out

	return c.Run(ctx, append([]string{"list"}, args...))
}

func TestListTree(t *testing.T) {
	ctx := seededContext(t)

	var out bytes.Buffer

	require.NoError(t, runList(ctx, &out))
	assert.Contains(t, out.String(), "ping")
	assert.Contains(t, out.String(), "latency check")
	assert.Contains(t, out.String(), "utility belt")
}

func TestListTreeEmpty(t *testing.T) {
	state := &cmdstate.State{
		Fs:    afero.NewMemMapFs(),
		Paths: shelfpath.New("/home/shelf"),
	}
	ctx := cmdstate.With(context.Background(), state)

	var out bytes.Buffer

	require.NoError(t, runList(ctx, &out))
	assert.Contains(t, out.String(), treeview.EmptyMessage)
}

func TestListJSON(t *testing.T) {
	ctx := seededContext(t)

	var out bytes.Buffer

	require.NoError(t, runList(ctx, &out, "--output", "json"))
	assert.Contains(t, out.String(), `"ping"`)
	assert.Contains(t, out.String(), "tools/net")
}

func TestListYAML(t *testing.T) {
	ctx := seededContext(t)

	var out bytes.Buffer

	require.NoError(t, runList(ctx, &out, "-o", "yaml"))
	assert.Contains(t, out.String(), "ping:")
	assert.Contains(t, out.String(), "latency check")
}

func TestListUnknownFormat(t *testing.T) {
	defer gostub.Stub(&cli.OsExiter, func(int) {}).Reset()

	ctx := seededContext(t)

	var out bytes.Buffer

	err := runList(ctx, &out, "-o", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown output format 'xml'")
}
