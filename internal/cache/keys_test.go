package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("invitation", "snapshot", "deadbeef")
	assert.Equal(t, "skillforge:invitation:snapshot:deadbeef", key)

	key = GenerateCacheKey("invitation", "snapshot", "deadbeef", "p1", "p2")
	assert.Equal(t, "skillforge:invitation:snapshot:deadbeef:p1_p2", key)
}
