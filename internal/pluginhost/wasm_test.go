package pluginhost_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/teleivo/fmtcore/internal/pluginhost"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := pluginhost.Load("testdata/does-not-exist.wasm")

	assert.Truef(t, err != nil, "Load() of a missing plugin should error")
}
