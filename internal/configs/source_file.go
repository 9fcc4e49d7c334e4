// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package configs

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// SourceFile represents one parsed configuration file.
type SourceFile struct {
	// Path is the path of the file as given to the parser.
	Path string

	file *hcl.File
}

// Declarations finds the resource and module declarations among the
// file's top-level blocks, preserving source order.
//
// Blocks of any other keyword are skipped silently: declarations such as
// "data" or "locals" are re-evaluated rather than tracked in state, so
// they need no address migration. A resource or module block with the
// wrong number of labels produces a warning diagnostic and is skipped,
// without affecting the other blocks in the file.
func (f *SourceFile) Declarations() ([]*Declaration, hcl.Diagnostics) {
	if body, ok := f.file.Body.(*hclsyntax.Body); ok {
		return f.declarationsFromSyntax(body)
	}
	return f.declarationsFromJSON(f.file.Body)
}

func (f *SourceFile) declarationsFromSyntax(body *hclsyntax.Body) ([]*Declaration, hcl.Diagnostics) {
	var ret []*Declaration
	var diags hcl.Diagnostics

	for _, block := range body.Blocks {
		var kind DeclKind
		var wantLabels int
		switch block.Type {
		case "resource":
			kind, wantLabels = DeclResource, 2
		case "module":
			kind, wantLabels = DeclModule, 1
		default:
			continue
		}

		if len(block.Labels) != wantLabels {
			defRange := block.DefRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagWarning,
				Summary:  fmt.Sprintf("Invalid %q block", block.Type),
				Detail: fmt.Sprintf(
					"A %s block must have %d label(s), but this one has %d. The block will not produce a moved block.",
					block.Type, wantLabels, len(block.Labels),
				),
				Subject: &defRange,
			})
			continue
		}

		ret = append(ret, f.newDeclaration(kind, block.Labels, block.DefRange()))
	}

	return ret, diags
}

// declarationsFromJSON handles bodies that aren't native syntax, which in
// practice means JSON syntax files. The generic body API enforces label
// cardinality itself, so its error diagnostics are downgraded here to the
// same warn-and-skip behavior the native path provides.
func (f *SourceFile) declarationsFromJSON(body hcl.Body) ([]*Declaration, hcl.Diagnostics) {
	var ret []*Declaration
	var diags hcl.Diagnostics

	content, _, contentDiags := body.PartialContent(declarationSchema)
	for _, diag := range contentDiags {
		demoted := *diag // shallow copy so we don't mutate the parser's state
		demoted.Severity = hcl.DiagWarning
		diags = append(diags, &demoted)
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "resource":
			ret = append(ret, f.newDeclaration(DeclResource, block.Labels, block.DefRange))
		case "module":
			ret = append(ret, f.newDeclaration(DeclModule, block.Labels, block.DefRange))
		}
	}

	return ret, diags
}

func (f *SourceFile) newDeclaration(kind DeclKind, labels []string, rng hcl.Range) *Declaration {
	// The labels are copied out so the declaration can outlive the parsed
	// body it came from.
	ownLabels := make([]string, len(labels))
	copy(ownLabels, labels)

	return &Declaration{
		Kind:       kind,
		Labels:     ownLabels,
		SourceFile: f.Path,
		DeclRange:  rng,
	}
}

var declarationSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "resource", LabelNames: []string{"type", "name"}},
		{Type: "module", LabelNames: []string{"name"}},
	},
}
