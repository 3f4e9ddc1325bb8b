package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
)

// FormatCommand rewrites every file the resolved config selects in place.
type FormatCommand struct {
	Meta
}

func (c *FormatCommand) Run(args []string) int {
	fw := c.flagSet("format")
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

	failed := false
	for _, r := range results {
		if r.err != nil {
			c.UI.Error(r.err.Error())
			failed = true
			continue
		}
		if !r.changed {
			continue
		}
		if err := afero.WriteFile(c.Fs, r.path, []byte(r.formatted), 0o644); err != nil {
			c.UI.Error(fmt.Sprintf("writing %s: %v", r.path, err))
			failed = true
			continue
		}
		c.UI.Output(r.path)
	}
	if failed {
		return 1
	}
	return 0
}

func (c *FormatCommand) Help() string {
	return "Usage: dotfmt format [glob ...]\n\n" +
		"  Formats every DOT file the resolved include/exclude globs select, rewriting\n" +
		"  changed files in place. With no glob arguments, uses the globs from the\n" +
		"  config file or the built-in defaults."
}

func (c *FormatCommand) Synopsis() string {
	return "Format DOT files in place"
}

// errWriter adapts a cli.Ui's error channel to an io.Writer for slog.
type errWriter struct{ ui interface{ Error(string) } }

func (w errWriter) Write(p []byte) (int, error) {
	w.ui.Error(string(p))
	return len(p), nil
}
