package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchID(t *testing.T) {
	// When: generating two match ids on the same node
	first := GenerateMatchID("arena1")
	second := GenerateMatchID("arena1")

	// Then: both carry the node and are unique
	assert.NotEqual(t, first, second)

	id, node, ok := SplitMatchID(first)
	require.True(t, ok)
	assert.Equal(t, "arena1", node)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestSplitMatchID_Invalid(t *testing.T) {
	for _, matchID := range []string{"", "arena1", "not-a-uuid.arena1", uuid.NewString() + "."} {
		_, _, ok := SplitMatchID(matchID)
		assert.False(t, ok, matchID)
	}
}

func TestIdentityFromDevice(t *testing.T) {
	t.Run("Same device maps to the same identity", func(t *testing.T) {
		assert.Equal(t, IdentityFromDevice("device-123456"), IdentityFromDevice("device-123456"))
	})

	t.Run("Different devices map to different identities", func(t *testing.T) {
		assert.NotEqual(t, IdentityFromDevice("device-123456"), IdentityFromDevice("device-654321"))
	})

	t.Run("Identity is a version 5 uuid", func(t *testing.T) {
		id, err := uuid.Parse(IdentityFromDevice("device-123456"))

		require.NoError(t, err)
		assert.Equal(t, uuid.Version(5), id.Version())
	})
}

func TestGenerateNewSessionID(t *testing.T) {
	assert.NotEqual(t, GenerateNewSessionID(), GenerateNewSessionID())
}
