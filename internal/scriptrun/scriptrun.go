// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scriptrun

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"slices"

	"github.com/matt-FFFFFF/shelf/internal/ctxlog"
	"github.com/matt-FFFFFF/shelf/internal/signalbroker"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrProcessWait is returned when waiting on the process fails.
	ErrProcessWait = errors.New("failed to wait for process")
)

// Command is a single script invocation. Standard streams are inherited from
// the manager process; nothing is captured.
type Command struct {
	// Path is the executable or script file to run.
	Path string
	// Interpreter optionally names an interpreter to run Path with. When
	// empty the script is executed directly (the kernel honors shebangs).
	Interpreter string
	// Args are opaque pass-through arguments for the script.
	Args []string

	sigCh chan os.Signal // allows mocking in tests
}

// Result reports how a run ended.
type Result struct {
	// ExitCode of the child, or -1 if it never started.
	ExitCode int
	// Interrupted is true when an interrupt-class signal was delivered while
	// the script ran. Signals are forwarded to the child and swallowed by
	// the manager: a Ctrl-C aimed at the script is not a manager error.
	Interrupted bool
	// Err holds any manager-side failure (start or wait).
	Err error
}

// Run starts the script and blocks until it finishes.
//
// Interrupt-class signals received while the child runs are forwarded to it
// and otherwise ignored. Context cancellation kills the child.
func (c *Command) Run(ctx context.Context) Result {
	logger := ctxlog.Logger(ctx).With("path", c.Path)
	logger.Debug("running script", "interpreter", c.Interpreter, "args", c.Args)

	if c.sigCh == nil {
		c.sigCh = signalbroker.New(ctx)
	}

	defer signal.Stop(c.sigCh)

	execPath := c.Path
	args := slices.Concat([]string{filepath.Base(c.Path)}, c.Args)

	if c.Interpreter != "" {
		execPath = c.Interpreter
		args = slices.Concat([]string{filepath.Base(c.Interpreter), c.Path}, c.Args)
	}

	ps, err := os.StartProcess(execPath, args, &os.ProcAttr{
		Env:   os.Environ(),
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		return Result{
			ExitCode: -1,
			Err:      errors.Join(ErrCouldNotStartProcess, err),
		}
	}

	logger.Debug("process started", "pid", ps.Pid)

	done := make(chan struct{})
	interrupted := make(chan struct{}, 1)

	// Watchdog: forward signals to the child, kill it on context
	// cancellation. The manager itself never dies from a forwarded signal.
	go func() {
		for {
			select {
			case s := <-c.sigCh:
				logger.Debug("forwarding signal to child", "signal", s.String())

				if err := ps.Signal(s); err != nil {
					logger.Debug("failed to forward signal", "signal", s.String(), "error", err)
				}

				select {
				case interrupted <- struct{}{}:
				default:
				}

			case <-ctx.Done():
				logger.Debug("context done, killing child")

				_ = ps.Kill()

				return

			case <-done:
				return
			}
		}
	}()

	state, err := ps.Wait()
	close(done)

	res := Result{}

	select {
	case <-interrupted:
		res.Interrupted = true
	default:
	}

	if err != nil {
		res.ExitCode = -1
		res.Err = errors.Join(ErrProcessWait, err)

		return res
	}

	res.ExitCode = state.ExitCode()
	logger.Debug("process finished", "exitCode", res.ExitCode)

	return res
}
