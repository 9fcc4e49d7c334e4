// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package addrs

import (
	"github.com/hashicorp/hcl/v2"
)

// Resource is the address of a managed resource declaration, identified by
// its resource type and name.
type Resource struct {
	Type string
	Name string
}

func (r Resource) String() string {
	return r.Type + "." + r.Name
}

func (r Resource) Equal(other Resource) bool {
	return r.Type == other.Type && r.Name == other.Name
}

// Steps returns the identifier segments of the resource address, in order.
func (r Resource) Steps() []string {
	return []string{r.Type, r.Name}
}

// Traversal returns the address as an HCL traversal expression. An error
// indicates that the type or name is empty, which suggests the address was
// built from an invalid declaration.
func (r Resource) Traversal() (hcl.Traversal, error) {
	return StepsTraversal(r.Steps()...)
}
