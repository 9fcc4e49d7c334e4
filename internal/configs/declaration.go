// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package configs

import (
	"github.com/hashicorp/hcl/v2"
)

// DeclKind distinguishes the kinds of top-level declaration that carry
// state and therefore participate in moves.
type DeclKind rune

const (
	// DeclResource is a "resource" block, declaring one managed
	// infrastructure object.
	DeclResource DeclKind = 'R'

	// DeclModule is a "module" block, instantiating a child module.
	DeclModule DeclKind = 'M'
)

// Keyword returns the block keyword that declares the given kind.
func (k DeclKind) Keyword() string {
	switch k {
	case DeclResource:
		return "resource"
	case DeclModule:
		return "module"
	default:
		panic("unknown declaration kind")
	}
}

// Declaration describes one resource or module declaration found in a
// configuration file: its kind, its labels in source order, and where it
// came from.
//
// Declarations are transient: they borrow nothing from the parsed body
// they were extracted from, so they remain valid after the body has been
// discarded.
type Declaration struct {
	Kind DeclKind

	// Labels are the block labels in source order: [type, name] for a
	// resource, [name] for a module.
	Labels []string

	// SourceFile is the path of the file the declaration was found in,
	// as given to the parser.
	SourceFile string

	// DeclRange is the source range of the block header, for use in
	// diagnostic messages.
	DeclRange hcl.Range
}

func (d *Declaration) String() string {
	switch d.Kind {
	case DeclModule:
		return "module." + d.Labels[0]
	default:
		return d.Labels[0] + "." + d.Labels[1]
	}
}
