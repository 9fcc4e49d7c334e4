// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moves

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// Synthesizes a configuration with hclwrite rather than fixture files and
// then runs the whole pipeline over it, as a sanity check that nothing
// depends on hand-authored formatting quirks in testdata.
func TestRunGeneratedConfig(t *testing.T) {
	dir := t.TempDir()

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	resource := hclwrite.NewBlock("resource", []string{"aws_instance", "web"})
	resource.Body().SetAttributeValue("ami", cty.StringVal("ami-123456"))
	resource.Body().SetAttributeValue("count", cty.NumberIntVal(3))
	body.AppendBlock(resource)
	body.AppendNewline()

	mod := hclwrite.NewBlock("module", []string{"db"})
	mod.Body().SetAttributeValue("source", cty.StringVal("./db"))
	body.AppendBlock(mod)

	if err := os.WriteFile(filepath.Join(dir, "main.tf"), f.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	result, diags := Run(dir, "platform", &buf)
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Err())
	}

	// The resource uses "count", but meta-arguments are opaque here: one
	// declaration still produces exactly one moved block.
	if got, want := result.Statements, 2; got != want {
		t.Errorf("wrong statement count %d; want %d", got, want)
	}

	want := fmt.Sprintf(`# %s
moved {
  from = aws_instance.web
  to   = module.platform.aws_instance.web
}
moved {
  from = module.db
  to   = module.platform.module.db
}
`, filepath.Join(dir, "main.tf"))
	if got := buf.String(); got != want {
		t.Errorf("wrong output\ngot:\n%s\nwant:\n%s", got, want)
	}
}
