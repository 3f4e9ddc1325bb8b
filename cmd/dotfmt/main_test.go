package main

import (
	"bytes"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
)

func TestRunPipeFormatsStdinToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"dotfmt"}, bytes.NewBufferString(`digraph{a->b}`), &stdout, &stderr)

	require.NoErrorf(t, err, "run()")
	assert.EqualValuesf(t, stdout.String(), "digraph {\n\ta -> b\n}", "run() output")
}

func TestRunDispatchesVersionSubcommand(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"dotfmt", "version"}, bytes.NewBufferString(""), &stdout, &stderr)

	require.NoErrorf(t, err, "run()")
	assert.Truef(t, stdout.Len() > 0, "run() version should print something")
}
