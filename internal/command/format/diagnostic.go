// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package format

import (
	"bytes"
	"fmt"

	"github.com/mitchellh/colorstring"
	wordwrap "github.com/mitchellh/go-wordwrap"

	"github.com/npetzall/moved-maker-sub004/internal/tfdiags"
)

// Diagnostic formats a single diagnostic message for human consumption.
//
// The width argument specifies at what column the detail text will be
// wrapped. If set to zero or one, the text is not wrapped at all.
func Diagnostic(diag tfdiags.Diagnostic, color *colorstring.Colorize, width int) string {
	if diag == nil {
		// No good reason to pass a nil diagnostic in here...
		return ""
	}

	var buf bytes.Buffer

	switch diag.Severity() {
	case tfdiags.Error:
		buf.WriteString(color.Color("\n[bold][red]Error: [reset]"))
	case tfdiags.Warning:
		buf.WriteString(color.Color("\n[bold][yellow]Warning: [reset]"))
	default:
		// Clear out any coloring that might be applied by the app's UI
		buf.WriteString(color.Color("\n[reset]"))
	}

	desc := diag.Description()
	buf.WriteString(color.Color(fmt.Sprintf("[bold]%s[reset]\n\n", desc.Summary)))

	if src := diag.Source(); src.Subject != nil {
		buf.WriteString(fmt.Sprintf("  on %s\n\n", src.Subject.StartString()))
	}

	if desc.Detail != "" {
		detail := desc.Detail
		if width > 1 {
			detail = wordwrap.WrapString(detail, uint(width-1))
		}
		fmt.Fprintf(&buf, "%s\n", detail)
	}

	return buf.String()
}
