// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moves

import (
	"fmt"
	"io"
	"log"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/npetzall/moved-maker-sub004/internal/tfdiags"
)

// Renderer writes the statements yielded by a Stream as configuration
// text: one "moved" block per statement, grouped under a comment naming
// the file each group came from.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render drains the stream and writes its statements, returning the
// number of blocks written.
//
// Consecutive statements from the same file form one group; this is
// sound because a stream never interleaves files. Groups are separated by
// exactly one blank line, with no blank lines between the blocks of a
// group. A statement that fails to render is reported as a warning and
// omitted; a failure to write to the sink is an error, since nothing
// sensible can be emitted after a partial write.
func (r *Renderer) Render(stream *Stream) (int, tfdiags.Diagnostics) {
	var diags tfdiags.Diagnostics

	written := 0
	currentFile := ""
	firstGroup := true
	group := hclwrite.NewEmptyFile()
	groupLen := 0

	flush := func() error {
		if groupLen == 0 {
			return nil
		}
		if !firstGroup {
			if _, err := r.w.Write([]byte{'\n'}); err != nil {
				return err
			}
		}
		if _, err := group.WriteTo(r.w); err != nil {
			return err
		}
		firstGroup = false
		group = hclwrite.NewEmptyFile()
		groupLen = 0
		return nil
	}

	for {
		stmt, ok := stream.Next()
		if !ok {
			break
		}

		block, err := stmt.Block()
		if err != nil {
			diags = diags.Append(tfdiags.Sourceless(
				tfdiags.Warning,
				"Skipped unrenderable moved block",
				fmt.Sprintf("A moved block for %q could not be rendered: %s.", stmt.Source(), err),
			))
			log.Printf("[WARN] moves: dropping statement from %s: %s", stmt.Source(), err)
			continue
		}

		if stmt.Source() != currentFile {
			if err := flush(); err != nil {
				diags = diags.Append(fmt.Errorf("failed to write output: %s", err))
				return written, diags
			}
			currentFile = stmt.Source()
			group.Body().AppendUnstructuredTokens(commentTokens("# " + currentFile))
		}

		group.Body().AppendBlock(block)
		groupLen++
		written++
	}

	if err := flush(); err != nil {
		diags = diags.Append(fmt.Errorf("failed to write output: %s", err))
	}
	return written, diags
}

func commentTokens(comment string) hclwrite.Tokens {
	return hclwrite.Tokens{
		{
			Type:  hclsyntax.TokenComment,
			Bytes: []byte(comment + "\n"),
		},
	}
}
