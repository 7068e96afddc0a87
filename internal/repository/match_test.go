package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Minute)

		// Given: a saved match with one player
		state := entity.NewMatchState(1700000000000)
		state.Players["123"] = entity.PlayerOne

		require.NoError(t, matchRepo.Save(ctx, "m1.arena1", state))

		// When: GetByID is called
		stored, err := matchRepo.GetByID(ctx, "m1.arena1")

		// Then: the state round-trips unchanged
		require.NoError(t, err)
		assert.Equal(t, state, stored)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Minute)

		_, err := matchRepo.GetByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("GetByID_RejectsCorruptState", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Minute)

		require.NoError(t, st.Storage.Set(ctx, "match:bad", `{"board":[7,0,0,0,0,0,0,0,0],"currentPlayer":1}`, 0).Err())

		_, err := matchRepo.GetByID(ctx, "bad")

		require.ErrorIs(t, err, entity.ErrInvalidMatchState)
	})
}

func TestMatchRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Minute)

		require.NoError(t, matchRepo.Save(ctx, "m1", entity.NewMatchState(0)))

		require.NoError(t, matchRepo.DeleteByID(ctx, "m1"))

		_, err := matchRepo.GetByID(ctx, "m1")
		require.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		matchRepo := NewMatchRepository(st.Storage, time.Minute)

		err := matchRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, ErrMatchNotFound)
	})
}
