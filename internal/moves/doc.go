// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package moves implements the generation of "moved" blocks for relocating
// existing resource and module declarations into a target module.
//
// The pipeline is a single lazy pass: a Stream pulls one configuration
// file at a time, extracts its declarations, and yields one move statement
// per declaration; a Renderer consumes the stream and writes the grouped
// declaration text. At most one file's parsed document is held in memory
// at any instant, regardless of how large the configuration is.
//
// If the same address is declared in more than one file the stream emits a
// statement for each occurrence. That configuration is invalid, but it is
// "terraform validate" that reports duplicate addresses with full context,
// so this package does not second-guess it.
package moves
