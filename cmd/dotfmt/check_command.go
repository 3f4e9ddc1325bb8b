package main

import (
	"context"
	"fmt"
	"log/slog"
)

// CheckCommand reports which files the resolved config would reformat, without writing anything.
// It exits 1 if any file is not already formatted, the convention CI pipelines rely on.
type CheckCommand struct {
	Meta
}

func (c *CheckCommand) Run(args []string) int {
	fw := c.flagSet("check")
	if err := fw.parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	cfg, err := c.resolvedConfig(fw)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if includes := fw.args(); len(includes) > 0 {
		cfg.Includes = includes
	}

	logger := slog.New(slog.NewTextHandler(errWriter{c.UI}, nil))
	results, err := runOverFileset(context.Background(), c.Fs, cfg, logger)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	unformatted := 0
	for _, r := range results {
		if r.err != nil {
			c.UI.Error(r.err.Error())
			unformatted++
			continue
		}
		if r.changed {
			c.UI.Output(fmt.Sprintf("%s: not formatted", r.path))
			unformatted++
		}
	}
	if unformatted > 0 {
		return 1
	}
	return 0
}

func (c *CheckCommand) Help() string {
	return "Usage: dotfmt check [glob ...]\n\n" +
		"  Reports files that would be reformatted, without modifying them. Exits\n" +
		"  non-zero if any file is not already formatted."
}

func (c *CheckCommand) Synopsis() string {
	return "Check whether DOT files are formatted"
}
