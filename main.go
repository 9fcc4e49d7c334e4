// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/cli"

	"github.com/npetzall/moved-maker-sub004/internal/logging"
	"github.com/npetzall/moved-maker-sub004/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	logging.SetupLogging()

	args := os.Args[1:]

	// Treat the common version flag spellings as the version subcommand.
	if len(args) > 0 {
		switch args[0] {
		case "-v", "-version", "--version":
			args[0] = "version"
		}
	}

	c := cli.NewCLI("tfmoved", version.String())
	c.Args = args
	c.Commands = initCommands()
	c.HelpFunc = cli.BasicHelpFunc("tfmoved")

	exitStatus, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}

	return exitStatus
}
