// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry owns the shelf data model: script records keyed by alias,
// category notes keyed by category path, and the store that persists them as
// a single human-readable JSON document.
//
// The document is loaded fully into memory at process start, mutated in
// memory, and persisted as a full rewrite on every mutating command. There is
// no cross-process locking; concurrent invocations race and the last writer
// wins. The save path uses an atomic rename so a crash mid-write cannot leave
// a truncated file behind.
package registry
