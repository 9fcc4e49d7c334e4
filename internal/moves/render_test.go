// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moves

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
)

func TestRenderGroups(t *testing.T) {
	var buf bytes.Buffer
	written, diags := NewRenderer(&buf).Render(NewStream("testdata/two-files", "svc"))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Err())
	}
	if got, want := written, 2; got != want {
		t.Errorf("wrote %d blocks; want %d", got, want)
	}

	want := fmt.Sprintf(`# %s
moved {
  from = aws_instance.web
  to   = module.svc.aws_instance.web
}

# %s
moved {
  from = module.db
  to   = module.svc.module.db
}
`,
		filepath.Join("testdata", "two-files", "a.tf"),
		filepath.Join("testdata", "two-files", "b.tf"),
	)
	if got := buf.String(); got != want {
		t.Errorf("wrong output\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSameFileGroup(t *testing.T) {
	var buf bytes.Buffer
	written, diags := NewRenderer(&buf).Render(NewStream("testdata/multi", "svc"))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Err())
	}
	if got, want := written, 2; got != want {
		t.Errorf("wrote %d blocks; want %d", got, want)
	}

	// Two blocks from the same file share one group: a single file
	// comment and no blank line between the blocks.
	want := fmt.Sprintf(`# %s
moved {
  from = aws_instance.web
  to   = module.svc.aws_instance.web
}
moved {
  from = aws_security_group.web
  to   = module.svc.aws_security_group.web
}
`,
		filepath.Join("testdata", "multi", "main.tf"),
	)
	if got := buf.String(); got != want {
		t.Errorf("wrong output\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderNothingToMove(t *testing.T) {
	var buf bytes.Buffer
	written, diags := NewRenderer(&buf).Render(NewStream("testdata/data-only", "svc"))
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Err())
	}
	if written != 0 {
		t.Errorf("wrote %d blocks; want 0", written)
	}
	if got := buf.String(); got != "" {
		t.Errorf("wrong output %q; want empty", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		_, diags := NewRenderer(&buf).Render(NewStream("testdata/two-files", "svc"))
		if diags.HasErrors() {
			t.Fatalf("unexpected errors: %s", diags.Err())
		}
		return buf.String()
	}

	first := render()
	second := render()
	if first != second {
		t.Errorf("two runs over identical input differ\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestRenderSinkFailure(t *testing.T) {
	_, diags := NewRenderer(brokenWriter{}).Render(NewStream("testdata/two-files", "svc"))
	if !diags.HasErrors() {
		t.Fatal("no error for failing sink")
	}
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}
