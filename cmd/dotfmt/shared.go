package main

import (
	"flag"

	"github.com/teleivo/fmtcore/internal/config"
)

// flagSetWithOverrides wraps a flag.FlagSet so only the flags a caller actually set flow into the
// override config.Config; flags left at their zero value must not clobber the file config or the
// built-in defaults during the mergo merge in config.Resolve.
type flagSetWithOverrides struct {
	fs      *flag.FlagSet
	m       *Meta
	useTabs *bool
}

func newFlagSetWithOverrides(name string, m *Meta) *flagSetWithOverrides {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&m.configPath, "config", "", "path to a dotfmt.json config file")
	fs.StringVar(&m.plugin, "plugin", "", "path to a Wasm formatter plugin, bypassing the built-in DOT printer")
	fs.IntVar(&m.indent, "indent-width", 0, "number of indent characters per level")
	fs.IntVar(&m.maxWidth, "max-width", 0, "preferred maximum line width")
	fs.StringVar(&m.newline, "newline", "", "newline sequence to emit, e.g. \\n or \\r\\n")
	useTabs := fs.Bool("use-tabs", false, "indent with tabs instead of spaces")
	return &flagSetWithOverrides{fs: fs, m: m, useTabs: useTabs}
}

func (fw *flagSetWithOverrides) parse(args []string) error {
	if err := fw.fs.Parse(args); err != nil {
		return err
	}
	wasSet := map[string]bool{}
	fw.fs.Visit(func(f *flag.Flag) {
		wasSet[f.Name] = true
	})
	if wasSet["use-tabs"] {
		fw.m.useTabs = fw.useTabs
	}
	if !wasSet["indent-width"] {
		fw.m.indent = 0
	}
	if !wasSet["max-width"] {
		fw.m.maxWidth = 0
	}
	return nil
}

func (fw *flagSetWithOverrides) args() []string {
	return fw.fs.Args()
}

// override projects the flags the caller set into a config.Config fit for config.Resolve.
func (fw *flagSetWithOverrides) override() config.Config {
	return config.Config{
		IndentWidth: fw.m.indent,
		MaxWidth:    fw.m.maxWidth,
		UseTabs:     fw.m.useTabs,
		NewLineText: fw.m.newline,
		Plugin:      fw.m.plugin,
	}
}
