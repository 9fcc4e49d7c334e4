// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package tfdiags is a utility package for representing errors and
// warnings in a manner that allows us to produce good messages for the
// user.
//
// "diag" is short for "diagnostics", and is meant as a general word for
// feedback to a user about potential or actual problems.
//
// A design goal for this package is for it to be able to smoothly absorb
// diagnostics from the HCL parsing and decoding layers as well as plain
// Go errors, so that the rest of the codebase can hand back a single
// homogeneous collection regardless of where a problem was detected.
package tfdiags
