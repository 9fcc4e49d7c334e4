// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"flag"
	"io"

	"github.com/hashicorp/cli"
	"github.com/mitchellh/colorstring"

	"github.com/npetzall/moved-maker-sub004/internal/command/format"
	"github.com/npetzall/moved-maker-sub004/internal/tfdiags"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	// Ui is the Ui for communicating with the user in command output.
	// The generated configuration itself never goes through Ui: it is
	// written directly to the requested sink so it stays machine-usable.
	Ui cli.Ui

	// Color is true if the output should be colorized. Commands with a
	// -no-color flag clear this before producing any output.
	Color bool
}

// Colorize returns the colorization configuration for output, honoring
// the Color field.
func (m *Meta) Colorize() *colorstring.Colorize {
	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !m.Color,
		Reset:   true,
	}
}

// flagSet creates a default flag set for the given command. Errors are
// reported through Ui by the caller's Usage hook, so the flag package's
// own output is suppressed.
func (m *Meta) flagSet(n string) *flag.FlagSet {
	f := flag.NewFlagSet(n, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	return f
}

// The width at which diagnostic detail text is wrapped before display.
const diagnosticTextWidth = 78

// showDiagnostics displays error and warning messages in the UI. The
// arguments are of any type accepted by tfdiags.Diagnostics.Append.
func (m *Meta) showDiagnostics(vals ...interface{}) {
	var diags tfdiags.Diagnostics
	diags = diags.Append(vals...)

	for _, diag := range diags {
		msg := format.Diagnostic(diag, m.Colorize(), diagnosticTextWidth)

		switch diag.Severity() {
		case tfdiags.Error:
			m.Ui.Error(msg)
		case tfdiags.Warning:
			m.Ui.Warn(msg)
		default:
			m.Ui.Output(msg)
		}
	}
}
