// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package command

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/posener/complete"

	"github.com/npetzall/moved-maker-sub004/version"
)

// VersionCommand is a Command implementation that prints the version.
type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Run(args []string) int {
	cmdFlags := c.Meta.flagSet("version")
	cmdFlags.Usage = func() { c.Ui.Error(c.Help()) }
	if err := cmdFlags.Parse(args); err != nil {
		return 1
	}

	c.Ui.Output(fmt.Sprintf("tfmoved v%s", version.String()))
	c.Ui.Output(fmt.Sprintf("on %s_%s", runtime.GOOS, runtime.GOARCH))
	return 0
}

func (c *VersionCommand) AutocompleteArgs() complete.Predictor {
	return complete.PredictNothing
}

func (c *VersionCommand) AutocompleteFlags() complete.Flags {
	return nil
}

func (c *VersionCommand) Help() string {
	helpText := `
Usage: tfmoved version

  Displays the version of tfmoved and the platform it is running on.
`
	return strings.TrimSpace(helpText)
}

func (c *VersionCommand) Synopsis() string {
	return "Show the current tfmoved version"
}
