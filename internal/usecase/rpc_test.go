package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-arena/mocks/usecase"
)

func TestRPCUseCase_Call(t *testing.T) {
	ctx := context.Background()

	t.Run("find_match returns the match id", func(t *testing.T) {
		// Given: a matchmaker that finds a match
		mockMatchmaker := mockedUseCase.NewMockmatchmaker(t)
		mockPlayers := mockedUseCase.NewMockplayerStats(t)
		useCaseInstance := NewRPCUseCase(mockMatchmaker, mockPlayers)

		mockMatchmaker.EXPECT().FindOrCreateMatch(ctx, "alice").Return("m1.arena1", nil).Once()

		// When: the rpc is called
		response, err := useCaseInstance.Call(ctx, "alice", RPCFindMatch, nil)

		// Then: the id is wrapped in matchIds
		require.NoError(t, err)
		assert.JSONEq(t, `{"matchIds":["m1.arena1"]}`, string(response))
	})

	t.Run("get_leaderboard returns the records", func(t *testing.T) {
		mockMatchmaker := mockedUseCase.NewMockmatchmaker(t)
		mockPlayers := mockedUseCase.NewMockplayerStats(t)
		useCaseInstance := NewRPCUseCase(mockMatchmaker, mockPlayers)

		mockPlayers.EXPECT().Leaderboard(ctx).Return([]entity.LeaderboardRecord{
			{OwnerID: "alice", Score: 1025, Subscore: 1025, Rank: 1, UpdateTime: 1700000000000},
		}, nil).Once()

		response, err := useCaseInstance.Call(ctx, "bob", RPCGetLeaderboard, nil)

		require.NoError(t, err)
		assert.JSONEq(t,
			`{"leaderboard":[{"ownerId":"alice","score":1025,"subscore":1025,"rank":1,"updateTime":1700000000000}]}`,
			string(response),
		)
	})

	t.Run("get_leaderboard on an empty board returns an empty list", func(t *testing.T) {
		mockMatchmaker := mockedUseCase.NewMockmatchmaker(t)
		mockPlayers := mockedUseCase.NewMockplayerStats(t)
		useCaseInstance := NewRPCUseCase(mockMatchmaker, mockPlayers)

		mockPlayers.EXPECT().Leaderboard(ctx).Return(nil, nil).Once()

		response, err := useCaseInstance.Call(ctx, "bob", RPCGetLeaderboard, nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{"leaderboard":[]}`, string(response))
	})

	t.Run("get_player_stats for a fresh identity returns defaults", func(t *testing.T) {
		// Given: a player without stored stats
		mockMatchmaker := mockedUseCase.NewMockmatchmaker(t)
		mockPlayers := mockedUseCase.NewMockplayerStats(t)
		useCaseInstance := NewRPCUseCase(mockMatchmaker, mockPlayers)

		mockPlayers.EXPECT().GetStats(ctx, "carol").Return(entity.NewPlayerProfile(), nil).Once()

		// When: the rpc is called
		response, err := useCaseInstance.Call(ctx, "carol", RPCGetPlayerStats, nil)

		// Then: the default stats are returned
		require.NoError(t, err)
		assert.JSONEq(t, `{"wins":0,"losses":0,"draws":0,"totalGames":0,"rating":1000}`, string(response))
	})

	t.Run("Failures are wrapped with the rpc id", func(t *testing.T) {
		mockMatchmaker := mockedUseCase.NewMockmatchmaker(t)
		mockPlayers := mockedUseCase.NewMockplayerStats(t)
		useCaseInstance := NewRPCUseCase(mockMatchmaker, mockPlayers)

		mockPlayers.EXPECT().GetStats(ctx, "carol").Return(nil, errRedisDown).Once()

		_, err := useCaseInstance.Call(ctx, "carol", RPCGetPlayerStats, nil)

		require.ErrorIs(t, err, errRedisDown)
		assert.Contains(t, err.Error(), RPCGetPlayerStats)
	})

	t.Run("Unknown rpc is rejected", func(t *testing.T) {
		mockMatchmaker := mockedUseCase.NewMockmatchmaker(t)
		mockPlayers := mockedUseCase.NewMockplayerStats(t)
		useCaseInstance := NewRPCUseCase(mockMatchmaker, mockPlayers)

		_, err := useCaseInstance.Call(ctx, "carol", "delete_everything", nil)

		require.ErrorIs(t, err, apperror.ErrUnknownRPC)
	})
}
