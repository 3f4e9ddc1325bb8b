package fileset_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"

	"github.com/teleivo/fmtcore/internal/fileset"
)

func TestExpandIncludesAndExcludes(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := []string{
		"graphs/a.dot",
		"graphs/b.gv",
		"graphs/nested/c.dot",
		"graphs/node_modules/d.dot",
		"README.md",
	}
	for _, f := range files {
		require.NoErrorf(t, afero.WriteFile(fsys, f, []byte("graph {}"), 0o644), "writing %s", f)
	}

	got, err := fileset.Expand(fsys, []string{"**/*.dot", "**/*.gv"}, []string{"**/node_modules/**"})

	require.NoErrorf(t, err, "Expand()")
	want := []string{"graphs/a.dot", "graphs/b.gv", "graphs/nested/c.dot"}
	assert.EqualValuesf(t, got, want, "Expand()")
}

func TestExpandInvalidPattern(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := fileset.Expand(fsys, []string{"["}, nil)

	assert.Truef(t, err != nil, "Expand() with an invalid pattern should error")
}

func TestExpandNoMatches(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoErrorf(t, afero.WriteFile(fsys, "README.md", []byte("x"), 0o644), "writing file")

	got, err := fileset.Expand(fsys, []string{"**/*.dot"}, nil)

	require.NoErrorf(t, err, "Expand()")
	assert.EqualValuesf(t, len(got), 0, "Expand() with no matches")
}
