// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scriptrun spawns a registered script as a child process with
// inherited standard streams and blocks until it finishes. Interrupt signals
// are forwarded to the child rather than terminating the manager.
package scriptrun
