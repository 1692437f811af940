// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	doc := NewDocument()
	doc.Scripts["ping"] = Script{Path: "/tmp/ping.sh"}
	doc.Scripts["l"] = Script{Path: "/tmp/l.sh"}

	tests := []struct {
		name      string
		raw       string
		wantAlias string
		wantOK    bool
	}{
		{"exact match", "ping", "ping", true},
		{"single dash stripped", "-ping", "ping", true},
		{"multiple dashes stripped", "--ping", "ping", true},
		{"reserved token never resolves", "-l", "", false},
		{"reserved canonical name without registration", "list", "", false},
		{"unknown name", "pong", "", false},
		{"unknown dashed name", "-pong", "", false},
		{"bare dashes", "--", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias, ok := doc.Resolve(tt.raw)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantAlias, alias)
		})
	}
}

func TestResolveExactMatchBeatsReserved(t *testing.T) {
	// An alias registered under a reserved spelling is the user's own doing;
	// exact matches always win.
	doc := NewDocument()
	doc.Scripts["list"] = Script{Path: "/tmp/list.sh"}

	alias, ok := doc.Resolve("list")

	assert.True(t, ok)
	assert.Equal(t, "list", alias)
}

func TestReserved(t *testing.T) {
	for _, token := range []string{"-l", "-add", "-cat", "-n", "-h", "--help", "list", "add", "category", "note", "run", "pick", "help"} {
		assert.True(t, Reserved(token), token)
	}

	assert.False(t, Reserved("-ping"))
	assert.False(t, Reserved("ping"))
}
