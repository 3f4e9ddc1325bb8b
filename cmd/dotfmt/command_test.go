package main

import (
	"testing"

	"github.com/hashicorp/cli"
	"github.com/spf13/afero"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func TestFormatCommandRewritesChangedFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoErrorf(t, afero.WriteFile(fsys, "a.dot", []byte(`digraph{a->b}`), 0o644), "writing a.dot")
	require.NoErrorf(t, afero.WriteFile(fsys, "b.dot", []byte("digraph {\n\ta -> b\n}"), 0o644), "writing b.dot")

	ui := cli.NewMockUi()
	cmd := &FormatCommand{Meta{UI: ui, Fs: fsys}}

	code := cmd.Run([]string{"a.dot", "b.dot"})

	assert.EqualValuesf(t, code, 0, "Run() exit code")
	got, err := afero.ReadFile(fsys, "a.dot")
	require.NoErrorf(t, err, "reading a.dot")
	assert.EqualValuesf(t, string(got), "digraph {\n\ta -> b\n}", "a.dot after formatting")
}

func TestCheckCommandReportsUnformattedFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoErrorf(t, afero.WriteFile(fsys, "a.dot", []byte(`digraph{a->b}`), 0o644), "writing a.dot")

	ui := cli.NewMockUi()
	cmd := &CheckCommand{Meta{UI: ui, Fs: fsys}}

	code := cmd.Run([]string{"a.dot"})

	assert.EqualValuesf(t, code, 1, "Run() exit code for an unformatted file")
	assert.Truef(t, len(ui.OutputWriter.String()) > 0, "Run() should report the unformatted file")

	got, err := afero.ReadFile(fsys, "a.dot")
	require.NoErrorf(t, err, "reading a.dot")
	assert.EqualValuesf(t, string(got), `digraph{a->b}`, "check must not modify files")
}

func TestCheckCommandPassesWhenAlreadyFormatted(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoErrorf(t, afero.WriteFile(fsys, "a.dot", []byte("digraph {\n\ta -> b\n}"), 0o644), "writing a.dot")

	ui := cli.NewMockUi()
	cmd := &CheckCommand{Meta{UI: ui, Fs: fsys}}

	code := cmd.Run([]string{"a.dot"})

	assert.EqualValuesf(t, code, 0, "Run() exit code for an already formatted file")
}

func TestVersionCommandPrintsVersion(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &VersionCommand{Meta{UI: ui}}

	code := cmd.Run(nil)

	assert.EqualValuesf(t, code, 0, "Run() exit code")
	assert.Truef(t, len(ui.OutputWriter.String()) > 0, "Run() should print a version string")
}
