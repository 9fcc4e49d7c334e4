// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moves

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/npetzall/moved-maker-sub004/internal/tfdiags"
)

// RunResult summarizes one generation pass.
type RunResult struct {
	// Statements is the number of moved blocks written to the sink.
	Statements int

	// SkippedFiles and SkippedBlocks count the inputs that were warned
	// about and passed over. A run with skips and no errors is still a
	// success; the skips are conveyed as warning diagnostics.
	SkippedFiles  int
	SkippedBlocks int
}

// Run generates moved blocks for every declaration under dir, relocating
// them into the module named targetModule, and writes the result to w.
//
// The returned diagnostics contain errors only for fatal conditions: an
// invalid target module name, an inaccessible directory, or a failed
// write to the sink. Anything recoverable is a warning, and an empty
// result is a success, so callers should inspect diags.HasErrors rather
// than the result to decide the outcome.
func Run(dir, targetModule string, w io.Writer) (*RunResult, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics

	if !hclsyntax.ValidIdentifier(targetModule) {
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Invalid target module name",
			fmt.Sprintf("The name %q is not a valid module name: it must be a valid identifier, since it becomes part of each generated address.", targetModule),
		))
		return nil, diags
	}

	stream := NewStream(dir, targetModule)
	written, renderDiags := NewRenderer(w).Render(stream)

	if err := stream.Err(); err != nil {
		diags = diags.Append(tfdiags.Sourceless(
			tfdiags.Error,
			"Cannot read configuration directory",
			fmt.Sprintf("Cannot generate moved blocks: %s.", err),
		))
		return nil, diags
	}

	diags = diags.Append(stream.Diagnostics())
	diags = diags.Append(renderDiags)
	if diags.HasErrors() {
		return nil, diags
	}

	return &RunResult{
		Statements:    written,
		SkippedFiles:  stream.SkippedFiles(),
		SkippedBlocks: stream.SkippedBlocks(),
	}, diags
}
