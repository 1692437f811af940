// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Script is a single catalogued script record.
type Script struct {
	// Path is the absolute location of the original script.
	Path string `json:"path"`
	// Backup is the location of the archived copy, if one was made.
	Backup string `json:"backup,omitempty"`
	// Category is the slash-separated category path the script belongs to.
	Category string `json:"category"`
	// Note is free-text shown in listings.
	Note string `json:"note"`
}

// Document is the full registry shape as persisted on disk.
// Scripts are keyed by alias, categories by category path.
type Document struct {
	Scripts    map[string]Script `json:"scripts"`
	Categories map[string]string `json:"categories"`
}

// NewDocument returns an empty registry document with initialized maps.
func NewDocument() Document {
	return Document{
		Scripts:    make(map[string]Script),
		Categories: make(map[string]string),
	}
}

// NormalizeCategory canonicalizes path separators in a category path to "/".
func NormalizeCategory(category string) string {
	return strings.ReplaceAll(category, `\`, "/")
}

// NextAlias returns the alias to use when registering a script whose base name
// is base and whose source is path. Collisions are resolved by appending _1,
// _2, ... unless the colliding alias already points at the same source path,
// in which case that alias is reused and its record overwritten.
func (d Document) NextAlias(base, path string) string {
	alias := base
	counter := 1

	for {
		existing, ok := d.Scripts[alias]
		if !ok || existing.Path == path {
			return alias
		}

		alias = fmt.Sprintf("%s_%d", base, counter)
		counter++
	}
}

// validate drops records that fail closed: a script with an empty path cannot
// be run or archived, so it is removed rather than surfaced as a load error.
// The returned error accumulates everything that was dropped, for debug
// logging only.
func (d *Document) validate() error {
	var errs error

	if d.Scripts == nil {
		d.Scripts = make(map[string]Script)
	}

	if d.Categories == nil {
		d.Categories = make(map[string]string)
	}

	for alias, s := range d.Scripts {
		if s.Path == "" {
			errs = multierror.Append(errs, fmt.Errorf("script %q has no path, dropping", alias))
			delete(d.Scripts, alias)
		}
	}

	return errs
}
