// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package addrs

import (
	"github.com/hashicorp/hcl/v2"
)

// ModuleCall is the address of a call from the current module to a child
// module.
type ModuleCall struct {
	Name string
}

func (c ModuleCall) String() string {
	return "module." + c.Name
}

func (c ModuleCall) Equal(other ModuleCall) bool {
	return c.Name == other.Name
}

// Steps returns the identifier segments of the module call address, in
// order, always beginning with the reserved "module" keyword.
func (c ModuleCall) Steps() []string {
	return []string{"module", c.Name}
}

// Traversal returns the address as an HCL traversal expression. An error
// indicates that the call name is empty, which suggests the address was
// built from an invalid declaration.
func (c ModuleCall) Traversal() (hcl.Traversal, error) {
	return StepsTraversal(c.Steps()...)
}
