package repository

import (
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_Get(t *testing.T) {
	t.Run("Get_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		profileRepo := NewProfileRepository(st.Storage)

		// When: Get is called for an identity without a profile
		profile, err := profileRepo.Get(ctx, "9999999")

		// Then: ErrProfileNotFound is returned and nothing is written
		require.ErrorIs(t, err, ErrProfileNotFound)
		assert.Nil(t, profile)

		keys, err := st.Storage.Keys(ctx, "*").Result()
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("Get_EmptyIdentity", func(t *testing.T) {
		ctx, st := suite.New(t)

		profileRepo := NewProfileRepository(st.Storage)

		_, err := profileRepo.Get(ctx, "")

		require.Error(t, err)
	})
}

func TestProfileRepository_Create(t *testing.T) {
	ctx, st := suite.New(t)

	profileRepo := NewProfileRepository(st.Storage)

	// Given: a fresh profile
	profile := entity.NewPlayerProfile()
	profile.CreatedAt = 1700000000000

	// When: Create is called twice
	created, err := profileRepo.Create(ctx, "123", profile)
	require.NoError(t, err)
	assert.True(t, created)

	other := &entity.PlayerProfile{Rating: 5000}
	created, err = profileRepo.Create(ctx, "123", other)

	// Then: the second call does not overwrite the first profile
	require.NoError(t, err)
	assert.False(t, created)

	stored, err := profileRepo.Get(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, profile, stored)

	// And: the profile lives under the player_stats/stats key of the identity
	exists, err := st.Storage.Exists(ctx, "player_stats:123:stats").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestProfileRepository_Update(t *testing.T) {
	t.Run("Update_DefaultsMissingProfile", func(t *testing.T) {
		ctx, st := suite.New(t)

		profileRepo := NewProfileRepository(st.Storage)

		// When: a win is recorded for an identity without a profile
		updated, err := profileRepo.Update(ctx, "123", func(profile *entity.PlayerProfile) {
			profile.RecordResult(entity.OutcomeWin)
		})

		// Then: the default profile is used as the base
		require.NoError(t, err)
		assert.Equal(t, &entity.PlayerProfile{Wins: 1, TotalGames: 1, Rating: 1025}, updated)

		stored, err := profileRepo.Get(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("Update_ConcurrentWritersAllApply", func(t *testing.T) {
		ctx, st := suite.New(t)

		profileRepo := NewProfileRepository(st.Storage)

		_, err := profileRepo.Create(ctx, "123", entity.NewPlayerProfile())
		require.NoError(t, err)

		// When: a few draws are recorded concurrently
		const writers = 3

		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, updateErr := profileRepo.Update(ctx, "123", func(profile *entity.PlayerProfile) {
					profile.RecordResult(entity.OutcomeDraw)
				})
				errs <- updateErr
			}()
		}
		wg.Wait()
		close(errs)

		// Then: no update is lost
		for updateErr := range errs {
			require.NoError(t, updateErr)
		}

		stored, err := profileRepo.Get(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, writers, stored.Draws)
		assert.Equal(t, writers, stored.TotalGames)
	})
}
