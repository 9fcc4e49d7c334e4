// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moves

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/npetzall/moved-maker-sub004/internal/addrs"
)

// Statement is one planned move: a mapping from an object's current
// address to its address inside the target module.
//
// There is one implementation per kind of moveable declaration. All
// implementations are pure values; rendering a statement has no side
// effects and can only fail if the statement was built from malformed
// inputs, which callers treat as recoverable for just that statement.
type Statement interface {
	// FromTraversal returns the object's current address.
	FromTraversal() (hcl.Traversal, error)

	// ToTraversal returns the object's address inside the target module.
	// It is always the "from" address prefixed with the target module's
	// own address.
	ToTraversal() (hcl.Traversal, error)

	// Block renders the statement as a "moved" block with no labels and
	// exactly two arguments, "from" and "to", whose values are unquoted
	// address expressions.
	Block() (*hclwrite.Block, error)

	// Source returns the path of the configuration file the moved
	// declaration came from.
	Source() string
}

// MovedResource is a Statement for a "resource" block.
type MovedResource struct {
	Resource     addrs.Resource
	SourceFile   string
	TargetModule string
}

var _ Statement = MovedResource{}

func (m MovedResource) FromTraversal() (hcl.Traversal, error) {
	return m.Resource.Traversal()
}

func (m MovedResource) ToTraversal() (hcl.Traversal, error) {
	return targetTraversal(m.TargetModule, m.Resource.Steps())
}

func (m MovedResource) Block() (*hclwrite.Block, error) {
	return movedBlock(m)
}

func (m MovedResource) Source() string {
	return m.SourceFile
}

// MovedModule is a Statement for a "module" block.
type MovedModule struct {
	Call         addrs.ModuleCall
	SourceFile   string
	TargetModule string
}

var _ Statement = MovedModule{}

func (m MovedModule) FromTraversal() (hcl.Traversal, error) {
	return m.Call.Traversal()
}

func (m MovedModule) ToTraversal() (hcl.Traversal, error) {
	return targetTraversal(m.TargetModule, m.Call.Steps())
}

func (m MovedModule) Block() (*hclwrite.Block, error) {
	return movedBlock(m)
}

func (m MovedModule) Source() string {
	return m.SourceFile
}

// targetTraversal prefixes the given address steps with the target
// module's own address, producing the "to" side of a statement.
func targetTraversal(targetModule string, steps []string) (hcl.Traversal, error) {
	if targetModule == "" {
		return nil, fmt.Errorf("target module name is empty")
	}
	full := make([]string, 0, len(steps)+2)
	full = append(full, "module", targetModule)
	full = append(full, steps...)
	return addrs.StepsTraversal(full...)
}

// movedBlock renders any statement as its "moved" block.
func movedBlock(stmt Statement) (*hclwrite.Block, error) {
	from, err := stmt.FromTraversal()
	if err != nil {
		return nil, err
	}
	to, err := stmt.ToTraversal()
	if err != nil {
		return nil, err
	}

	block := hclwrite.NewBlock("moved", nil)
	body := block.Body()
	body.SetAttributeTraversal("from", from)
	body.SetAttributeTraversal("to", to)
	return block, nil
}
