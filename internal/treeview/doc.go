// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package treeview renders the registry as an indented category tree.
// The tree is derived at display time from the flat category path strings;
// nothing hierarchical is persisted.
package treeview
