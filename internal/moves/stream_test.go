// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moves

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/npetzall/moved-maker-sub004/internal/addrs"
	"github.com/npetzall/moved-maker-sub004/internal/tfdiags"
)

func TestStream(t *testing.T) {
	stream := NewStream("testdata/two-files", "svc")

	var got []Statement
	for {
		stmt, ok := stream.Next()
		if !ok {
			break
		}
		got = append(got, stmt)
	}

	want := []Statement{
		MovedResource{
			Resource:     addrs.Resource{Type: "aws_instance", Name: "web"},
			SourceFile:   filepath.Join("testdata", "two-files", "a.tf"),
			TargetModule: "svc",
		},
		MovedModule{
			Call:         addrs.ModuleCall{Name: "db"},
			SourceFile:   filepath.Join("testdata", "two-files", "b.tf"),
			TargetModule: "svc",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong statements\n%s", diff)
	}

	if err := stream.Err(); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if len(stream.Diagnostics()) != 0 {
		t.Errorf("unexpected diagnostics: %#v", stream.Diagnostics())
	}
	if got := stream.SkippedFiles(); got != 0 {
		t.Errorf("%d skipped files; want 0", got)
	}
	if got := stream.SkippedBlocks(); got != 0 {
		t.Errorf("%d skipped blocks; want 0", got)
	}

	// A stream is single-use: once exhausted it must stay exhausted.
	if stmt, ok := stream.Next(); ok {
		t.Errorf("exhausted stream yielded %#v", stmt)
	}
}

func TestStreamRecoverable(t *testing.T) {
	stream := NewStream("testdata/faulty", "svc")

	var got []Statement
	for {
		stmt, ok := stream.Next()
		if !ok {
			break
		}
		got = append(got, stmt)
	}

	// broken.tf fails to parse and a.tf sorts before c.tf; the one-label
	// resource block in c.tf is dropped but its module block survives.
	want := []Statement{
		MovedResource{
			Resource:     addrs.Resource{Type: "aws_instance", Name: "web"},
			SourceFile:   filepath.Join("testdata", "faulty", "a.tf"),
			TargetModule: "svc",
		},
		MovedModule{
			Call:         addrs.ModuleCall{Name: "db"},
			SourceFile:   filepath.Join("testdata", "faulty", "c.tf"),
			TargetModule: "svc",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong statements\n%s", diff)
	}

	diags := stream.Diagnostics()
	if diags.HasErrors() {
		t.Errorf("diagnostics contain errors: %s", diags.Err())
	}
	if got, want := len(diags.Warnings()), 2; got != want {
		t.Errorf("%d warnings; want %d", got, want)
	}
	if got, want := stream.SkippedFiles(), 1; got != want {
		t.Errorf("%d skipped files; want %d", got, want)
	}
	if got, want := stream.SkippedBlocks(), 1; got != want {
		t.Errorf("%d skipped blocks; want %d", got, want)
	}
	if err := stream.Err(); err != nil {
		t.Errorf("unexpected fatal error: %s", err)
	}
}

func TestStreamBadRoot(t *testing.T) {
	stream := NewStream("testdata/nonexist", "svc")

	// Construction must not perform any I/O, so the failure only shows
	// up once iteration starts.
	if err := stream.Err(); err != nil {
		t.Fatalf("error before first Next: %s", err)
	}

	if stmt, ok := stream.Next(); ok {
		t.Fatalf("Next yielded %#v; want exhaustion", stmt)
	}
	if err := stream.Err(); err == nil {
		t.Fatal("no error for inaccessible root")
	}
}

func TestStreamDiagnosticsAreWarnings(t *testing.T) {
	stream := NewStream("testdata/faulty", "svc")
	for {
		if _, ok := stream.Next(); !ok {
			break
		}
	}
	for _, diag := range stream.Diagnostics() {
		if got := diag.Severity(); got != tfdiags.Warning {
			t.Errorf("diagnostic %q has severity %c; want warning", diag.Description().Summary, got)
		}
	}
}
