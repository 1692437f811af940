// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import "strings"

// reservedTokens are the argv spellings that always act as commands and never
// resolve to an alias via the dash-stripping fallback. They cover the
// original single-dash surface and the canonical subcommand spellings.
var reservedTokens = map[string]struct{}{
	"-l":       {},
	"-add":     {},
	"-cat":     {},
	"-n":       {},
	"-h":       {},
	"--help":   {},
	"list":     {},
	"add":      {},
	"category": {},
	"note":     {},
	"run":      {},
	"pick":     {},
	"help":     {},
}

// Reserved reports whether the token is a reserved command spelling.
func Reserved(token string) bool {
	_, ok := reservedTokens[token]
	return ok
}

// Resolve maps a raw argv token to a registered alias.
//
// An exact match wins immediately. Failing that, a token with one or more
// leading dashes that is not a reserved command spelling is retried once with
// all leading dashes stripped. This disambiguation exists because the same
// argv slot doubles as flag or alias: "-backup" should run a script
// registered as "backup", but "-l" is always the list command.
func (d Document) Resolve(raw string) (string, bool) {
	if _, ok := d.Scripts[raw]; ok {
		return raw, true
	}

	if !strings.HasPrefix(raw, "-") || Reserved(raw) {
		return "", false
	}

	stripped := strings.TrimLeft(raw, "-")
	if _, ok := d.Scripts[stripped]; ok {
		return stripped, true
	}

	return "", false
}
