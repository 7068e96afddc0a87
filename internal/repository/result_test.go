package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRepository_Claim(t *testing.T) {
	t.Run("Claim_FirstCallerWins", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage, time.Minute)

		// Given: an unscored match
		// When: the result is claimed twice
		first, err := resultRepo.Claim(ctx, "m1.arena1")
		require.NoError(t, err)

		second, err := resultRepo.Claim(ctx, "m1.arena1")
		require.NoError(t, err)

		// Then: only the first claim succeeds
		assert.True(t, first)
		assert.False(t, second)

		ttl, err := st.Storage.TTL(ctx, "match_result:m1.arena1").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("Claim_IsPerMatch", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage, time.Minute)

		first, err := resultRepo.Claim(ctx, "m1.arena1")
		require.NoError(t, err)

		other, err := resultRepo.Claim(ctx, "m2.arena1")
		require.NoError(t, err)

		assert.True(t, first)
		assert.True(t, other)
	})
}
