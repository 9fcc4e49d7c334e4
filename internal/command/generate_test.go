// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/cli"
)

func TestGenerate(t *testing.T) {
	ui := cli.NewMockUi()
	c := &GenerateCommand{
		Meta: Meta{Ui: ui},
	}

	outPath := filepath.Join(t.TempDir(), "moved.tf")
	args := []string{"-module=platform", "-out=" + outPath, "testdata/simple"}
	if code := c.Run(args); code != 0 {
		t.Fatalf("wrong exit code %d; want 0\nstderr:\n%s", code, ui.ErrorWriter.String())
	}

	generated, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %s", err)
	}
	for _, want := range []string{
		"# " + filepath.Join("testdata", "simple", "main.tf"),
		"from = aws_instance.web",
		"to   = module.platform.aws_instance.web",
		"from = module.db",
		"to   = module.platform.module.db",
	} {
		if !strings.Contains(string(generated), want) {
			t.Errorf("output is missing %q:\n%s", want, generated)
		}
	}

	if got, want := ui.OutputWriter.String(), "Generated 2 moved block(s)"; !strings.Contains(got, want) {
		t.Errorf("missing summary %q in output:\n%s", want, got)
	}
}

func TestGenerateMissingModule(t *testing.T) {
	ui := cli.NewMockUi()
	c := &GenerateCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run([]string{"testdata/simple"}); code != 1 {
		t.Fatalf("wrong exit code %d; want 1", code)
	}
	if got, want := ui.ErrorWriter.String(), "-module option is required"; !strings.Contains(got, want) {
		t.Errorf("missing %q in error output:\n%s", want, got)
	}
}

func TestGenerateTooManyArgs(t *testing.T) {
	ui := cli.NewMockUi()
	c := &GenerateCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run([]string{"-module=platform", "one", "two"}); code != 1 {
		t.Fatalf("wrong exit code %d; want 1", code)
	}
	if got, want := ui.ErrorWriter.String(), "Too many command line arguments"; !strings.Contains(got, want) {
		t.Errorf("missing %q in error output:\n%s", want, got)
	}
}

func TestGenerateBadDir(t *testing.T) {
	ui := cli.NewMockUi()
	c := &GenerateCommand{
		Meta: Meta{Ui: ui},
	}

	outPath := filepath.Join(t.TempDir(), "moved.tf")
	args := []string{"-module=platform", "-out=" + outPath, "testdata/nonexist"}
	if code := c.Run(args); code != 1 {
		t.Fatalf("wrong exit code %d; want 1", code)
	}
	if got, want := ui.ErrorWriter.String(), "Cannot read configuration directory"; !strings.Contains(got, want) {
		t.Errorf("missing %q in error output:\n%s", want, got)
	}
}

func TestVersion(t *testing.T) {
	ui := cli.NewMockUi()
	c := &VersionCommand{
		Meta: Meta{Ui: ui},
	}

	if code := c.Run(nil); code != 0 {
		t.Fatalf("wrong exit code %d; want 0", code)
	}
	if got := ui.OutputWriter.String(); !strings.Contains(got, "tfmoved v") {
		t.Errorf("unexpected version output:\n%s", got)
	}
}
