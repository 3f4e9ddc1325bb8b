package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/teleivo/fmtcore/internal/config"
)

func TestLoadMissingFileReturnsZeroConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()

	got, err := config.Load(fsys, "dotfmt.json")

	require.NoErrorf(t, err, "Load() of a missing file")
	assert.EqualValuesf(t, got, config.Config{}, "Load() of a missing file")
}

func TestLoadParsesJSON(t *testing.T) {
	fsys := afero.NewMemMapFs()
	err := afero.WriteFile(fsys, "dotfmt.json", []byte(`{"maxWidth": 100, "includes": ["a/**/*.dot"]}`), 0o644)
	require.NoErrorf(t, err, "writing test config")

	got, err := config.Load(fsys, "dotfmt.json")

	require.NoErrorf(t, err, "Load()")
	assert.EqualValuesf(t, got.MaxWidth, 100, "MaxWidth")
	assert.EqualValuesf(t, got.Includes, []string{"a/**/*.dot"}, "Includes")
}

func TestLoadInvalidJSON(t *testing.T) {
	fsys := afero.NewMemMapFs()
	err := afero.WriteFile(fsys, "dotfmt.json", []byte(`{`), 0o644)
	require.NoErrorf(t, err, "writing test config")

	_, err = config.Load(fsys, "dotfmt.json")

	assert.Truef(t, err != nil, "Load() of invalid JSON should error")
}

func TestResolveLayersDefaultsFileAndOverrides(t *testing.T) {
	file := config.Config{MaxWidth: 100}
	override := config.Config{Plugin: "plugin.wasm"}

	got, err := config.Resolve(file, override)

	require.NoErrorf(t, err, "Resolve()")
	assert.EqualValuesf(t, got.MaxWidth, 100, "MaxWidth comes from the file layer")
	assert.EqualValuesf(t, got.Plugin, "plugin.wasm", "Plugin comes from the override layer")
	assert.EqualValuesf(t, got.IndentWidth, config.Default().IndentWidth, "IndentWidth falls back to the default")
}

func TestPrinterOptionsDefaultsUseTabsFalseWhenUnset(t *testing.T) {
	c := config.Config{IndentWidth: 2, MaxWidth: 80, NewLineText: "\n"}

	got := c.PrinterOptions()

	assert.EqualValuesf(t, got.UseTabs, false, "UseTabs")
	assert.EqualValuesf(t, got.IndentWidth, 2, "IndentWidth")
}
