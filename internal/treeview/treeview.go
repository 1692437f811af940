// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package treeview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/shelf/internal/registry"
)

const (
	bannerWidth = 80
	indentUnit  = "  "

	// uncategorized is the display name for scripts with an empty category.
	uncategorized = "uncategorized"
)

var (
	bannerStyle   = lipgloss.NewStyle().Bold(true).Width(bannerWidth).Align(lipgloss.Center)
	ruleStyle     = lipgloss.NewStyle().Faint(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	aliasStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noteStyle     = lipgloss.NewStyle().Faint(true)
)

// EmptyMessage is printed instead of a tree when no scripts are registered.
const EmptyMessage = "No scripts registered yet. Use 'shelf add <category> <file> <note>' to add one."

// Render writes a tree view of the registry to w.
//
// Scripts are sorted by their category path string. This approximates
// hierarchical grouping: lexicographic order of path strings does not always
// match tree pre-order for sibling categories with differing prefixes. That
// is an accepted limitation of the flat data model, not something to fix
// here.
func Render(w io.Writer, doc registry.Document) {
	if len(doc.Scripts) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return
	}

	type entry struct {
		alias  string
		script registry.Script
	}

	entries := make([]entry, 0, len(doc.Scripts))
	for alias, s := range doc.Scripts {
		entries = append(entries, entry{alias: alias, script: s})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].script.Category != entries[j].script.Category {
			return entries[i].script.Category < entries[j].script.Category
		}

		return entries[i].alias < entries[j].alias
	})

	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(w, bannerStyle.Render("SCRIPT SHELF"))
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))

	lastCategory := ""
	first := true

	for _, e := range entries {
		cat := e.script.Category

		if first || cat != lastCategory {
			writeCategoryHeader(w, cat, doc.Categories[cat])

			lastCategory = cat
			first = false
		}

		depth := strings.Count(cat, "/")
		indent := strings.Repeat(indentUnit, depth+1)

		line := fmt.Sprintf("%s* %s : %s", indent, aliasStyle.Render(fmt.Sprintf("%-15s", e.alias)), e.script.Note)
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
}

func writeCategoryHeader(w io.Writer, category, note string) {
	depth := strings.Count(category, "/")
	indent := strings.Repeat(indentUnit, depth)

	name := category
	if i := strings.LastIndex(category, "/"); i >= 0 {
		name = category[i+1:]
	}

	if name == "" {
		name = uncategorized
	}

	header := indent + categoryStyle.Render(name)
	if note != "" {
		header += " " + noteStyle.Render("("+note+")")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, ruleStyle.Render(indent+strings.Repeat("-", bannerWidth-len(indent))))
}
