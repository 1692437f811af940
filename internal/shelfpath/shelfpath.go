// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package shelfpath resolves the on-disk locations used by shelf: the registry
// data file and the storage directory for archived scripts. Both live under a
// single base directory, which defaults to the directory containing the
// executable and can be overridden with the SHELF_HOME environment variable.
package shelfpath

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// HomeEnv is the environment variable that overrides the base directory.
	HomeEnv = "SHELF_HOME"

	dataFileName   = "data.json"
	storageDirName = "storage"
)

// ErrNoExecutable is returned when the executable path cannot be determined.
var ErrNoExecutable = errors.New("could not determine executable path")

// Paths holds the resolved filesystem locations for a shelf invocation.
// It is constructed once and passed into every component that touches disk.
type Paths struct {
	// Base is the directory holding the data file and storage directory.
	Base string
	// DataFile is the location of the persisted registry document.
	DataFile string
	// StorageDir is the root of the archived script tree.
	StorageDir string
}

// New returns the Paths rooted at the given base directory.
func New(base string) Paths {
	return Paths{
		Base:       base,
		DataFile:   filepath.Join(base, dataFileName),
		StorageDir: filepath.Join(base, storageDirName),
	}
}

// Resolve determines the base directory for this invocation.
// SHELF_HOME wins if set; otherwise the directory of the running executable is
// used, matching the convention that the data file sits beside the program.
func Resolve() (Paths, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return New(home), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return Paths{}, errors.Join(ErrNoExecutable, err)
	}

	return New(filepath.Dir(exe)), nil
}
