// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"os"

	"github.com/hashicorp/cli"
	"github.com/mattn/go-colorable"

	"github.com/npetzall/moved-maker-sub004/internal/command"
)

// initCommands builds the factories for the commands the CLI can run.
func initCommands() map[string]cli.CommandFactory {
	// Warnings and errors go to stderr, colorized when the platform
	// supports it; stdout is reserved for generated configuration so it
	// can be piped into a file directly.
	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: colorable.NewColorableStderr(),
		Reader:      os.Stdin,
	}

	meta := command.Meta{
		Ui:    ui,
		Color: true,
	}

	return map[string]cli.CommandFactory{
		"generate": func() (cli.Command, error) {
			return &command.GenerateCommand{
				Meta: meta,
			}, nil
		},
		"version": func() (cli.Command, error) {
			return &command.VersionCommand{
				Meta: meta,
			}, nil
		},
	}
}
