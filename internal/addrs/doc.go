// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package addrs contains types that represent "addresses", which are
// references to specific objects within a Terraform configuration.
//
// All addresses have string representations based on HCL traversal syntax,
// which should be used in the user interface and generated configuration.
// The string representations are intended to be unambiguous: an address
// is always a chained identifier traversal, never a quoted string, since
// the destination format distinguishes between the two.
//
// This package only deals with the static addresses of whole declarations.
// Instance keys created by "count" and "for_each" are intentionally not
// modeled here; one declaration has exactly one address.
package addrs
