// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the shelf command-line application.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/shelf"
	"github.com/matt-FFFFFF/shelf/cmd"
	"github.com/matt-FFFFFF/shelf/cmd/cmdstate"
	"github.com/matt-FFFFFF/shelf/internal/ctxlog"
	"github.com/matt-FFFFFF/shelf/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	// The broker keeps interrupt signals from killing the manager while a
	// script runs; the watchdog only cancels on a repeated signal.
	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	cmd.Version = fmt.Sprintf("%s (commit: %s)", shelf.Version, shelf.Commit)

	state, err := cmdstate.New()
	if err != nil {
		ctxlog.Logger(ctx).Error("could not resolve shelf paths", "error", err)
		os.Exit(1)
	}

	if err := cmd.Dispatch(ctx, state, os.Args); err != nil {
		if errors.Is(err, cmd.ErrUnknownCommand) {
			fmt.Fprintf(os.Stdout, "Error: %s. See 'shelf --help'.\n", err)
			os.Exit(1)
		}

		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
