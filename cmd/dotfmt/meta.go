package main

import (
	"github.com/hashicorp/cli"
	"github.com/spf13/afero"

	"github.com/teleivo/fmtcore/internal/config"
)

// Meta holds the state shared by every subcommand: where flags land once parsed, which
// filesystem to resolve paths against, and the UI to report through. Tests swap Fs for an
// in-memory afero.Fs and UI for a cli.NewMockUi() instead of touching the real disk and terminal.
type Meta struct {
	UI cli.Ui
	Fs afero.Fs

	configPath string
	plugin     string
	indent     int
	maxWidth   int
	useTabs    *bool
	newline    string
}

// flagSet builds the flag.FlagSet shared by format and check: the same config and printer
// overrides apply to both, so they're defined once here rather than duplicated per command.
func (m *Meta) flagSet(name string) *flagSetWithOverrides {
	return newFlagSetWithOverrides(name, m)
}

// resolvedConfig loads the on-disk config (if any) at m.configPath, layers the flags the caller
// actually set on top of it, and returns the fully resolved config.Config.
func (m *Meta) resolvedConfig(fw *flagSetWithOverrides) (config.Config, error) {
	path := m.configPath
	if path == "" {
		path = "dotfmt.json"
	}
	fileCfg, err := config.Load(m.Fs, path)
	if err != nil {
		return config.Config{}, err
	}
	return config.Resolve(fileCfg, fw.override())
}
