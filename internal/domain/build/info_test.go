package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Short(t *testing.T) {
	assert.Equal(t, "dev", Info{}.Short())
	assert.Equal(t, "v1.0.0", Info{Version: "v1.0.0", Commit: "unknown"}.Short())
	assert.Equal(t, "v1.0.0 (abcdef0)", Info{Version: "v1.0.0", Commit: "abcdef0123"}.Short())
}
