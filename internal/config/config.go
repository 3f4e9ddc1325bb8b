// Package config resolves the printer options a format run uses: repository defaults, an
// optional JSON config file, and CLI flag overrides merged in that precedence order. This mirrors
// dprint's layered configuration resolution, simplified to the single core printer's knobs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/spf13/afero"

	"github.com/teleivo/fmtcore/printer"
)

// Config is the on-disk and CLI-overridable shape of a format run's settings. Pointer fields
// distinguish "unset" from their zero value so mergo only overrides what was actually specified.
type Config struct {
	IndentWidth int      `json:"indentWidth,omitempty"`
	MaxWidth    int      `json:"maxWidth,omitempty"`
	UseTabs     *bool    `json:"useTabs,omitempty"`
	NewLineText string   `json:"newLine,omitempty"`
	Includes    []string `json:"includes,omitempty"`
	Excludes    []string `json:"excludes,omitempty"`
	Plugin      string   `json:"plugin,omitempty"`
}

// Default returns the baseline config applied before any file or flag overrides.
func Default() Config {
	useTabs := true
	return Config{
		IndentWidth: 1,
		MaxWidth:    80,
		UseTabs:     &useTabs,
		NewLineText: "\n",
		Includes:    []string{"**/*.dot", "**/*.gv"},
		Excludes:    []string{"**/node_modules/**"},
	}
}

// Load reads and parses a JSON config file at path. A missing file is not an error: it returns the
// zero Config so callers can merge it in without special-casing absence.
func Load(fsys afero.Fs, path string) (Config, error) {
	f, err := fsys.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("opening config %s: %w", path, err)
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// Resolve layers file and override (CLI flag) config on top of [Default], with override winning
// ties. Both are optional: their zero values leave the layer beneath them untouched.
func Resolve(file, override Config) (Config, error) {
	resolved := Default()
	if err := mergo.Merge(&resolved, file, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("merging file config: %w", err)
	}
	if err := mergo.Merge(&resolved, override, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("merging flag overrides: %w", err)
	}
	return resolved, nil
}

// PrinterOptions projects the resolved config onto the options [printer.Format] understands.
func (c Config) PrinterOptions() printer.Options {
	useTabs := false
	if c.UseTabs != nil {
		useTabs = *c.UseTabs
	}
	return printer.Options{
		IndentWidth: c.IndentWidth,
		MaxWidth:    c.MaxWidth,
		UseTabs:     useTabs,
		NewLineText: c.NewLineText,
	}
}
