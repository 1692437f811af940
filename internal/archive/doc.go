// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package archive copies scripts into the storage tree. The storage directory
// mirrors category path segments, so a script added under "tools/net" is
// archived at <storage>/tools/net/<filename>. Remote sources are fetched with
// go-getter before archiving.
package archive
