package main

import (
	"github.com/teleivo/fmtcore/internal/version"
)

// VersionCommand prints the module's build version.
type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Run(args []string) int {
	c.UI.Output(version.Version())
	return 0
}

func (c *VersionCommand) Help() string {
	return "Usage: dotfmt version"
}

func (c *VersionCommand) Synopsis() string {
	return "Print the dotfmt version"
}
