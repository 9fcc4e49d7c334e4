// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package configs

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Parser is the main interface to read configuration files from disk.
// It wraps a HCL parser, which keeps track of all of the files it has
// parsed so that diagnostic rendering can show source snippets.
type Parser struct {
	p *hclparse.Parser
}

// NewParser creates and returns a new Parser with no files loaded.
func NewParser() *Parser {
	return &Parser{
		p: hclparse.NewParser(),
	}
}

// LoadSourceFile reads the file at the given path and parses it as a
// configuration file, in either native or JSON syntax depending on the
// file extension.
//
// A failure to read or parse the file is returned as error diagnostics
// with a nil SourceFile. Callers treat this as recoverable: the file is
// reported and skipped, and processing continues with other files.
func (p *Parser) LoadSourceFile(path string) (*SourceFile, hcl.Diagnostics) {
	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(path, ".json") {
		file, diags = p.p.ParseJSONFile(path)
	} else {
		file, diags = p.p.ParseHCLFile(path)
	}
	if file == nil || diags.HasErrors() {
		return nil, diags
	}

	return &SourceFile{
		Path: path,
		file: file,
	}, diags
}

// Sources returns the raw source code of the files the parser has read,
// keyed by filename, as needed for diagnostic rendering.
func (p *Parser) Sources() map[string][]byte {
	ret := make(map[string][]byte)
	for name, file := range p.p.Files() {
		ret[name] = file.Bytes
	}
	return ret
}
