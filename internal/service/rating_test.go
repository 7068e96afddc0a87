package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-arena/mocks/service"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// applyTo runs the update callback against a copy of base, like the Redis repository does.
func applyTo(base *entity.PlayerProfile) func(context.Context, string, func(*entity.PlayerProfile)) (*entity.PlayerProfile, error) {
	return func(_ context.Context, _ string, apply func(*entity.PlayerProfile)) (*entity.PlayerProfile, error) {
		profile := *base
		apply(&profile)
		return &profile, nil
	}
}

func TestRatingService_UpdateRatings(t *testing.T) {
	ctx := context.Background()

	t.Run("Winner gains and loser drops", func(t *testing.T) {
		// Given: two players with stored profiles and an unscored match
		mockProfileRepo := mockedService.NewMockprofileRepo(t)
		mockLeaderboardRepo := mockedService.NewMockleaderboardRepo(t)
		mockResultRepo := mockedService.NewMockresultRepo(t)
		ratings := NewRatingService(newTestLogger(), mockProfileRepo, mockLeaderboardRepo, mockResultRepo)

		mockResultRepo.EXPECT().Claim(ctx, "m1").Return(true, nil).Once()

		winnerProfile := &entity.PlayerProfile{Wins: 2, TotalGames: 4, Rating: 1010}
		loserProfile := &entity.PlayerProfile{Losses: 3, TotalGames: 3, Rating: 955}

		mockProfileRepo.EXPECT().Update(ctx, "p1", mock.Anything).RunAndReturn(applyTo(winnerProfile)).Once()
		mockProfileRepo.EXPECT().Update(ctx, "p2", mock.Anything).RunAndReturn(applyTo(loserProfile)).Once()

		mockLeaderboardRepo.EXPECT().Write(ctx, "p1", int64(1035), int64(1035)).Return(nil).Once()
		mockLeaderboardRepo.EXPECT().Write(ctx, "p2", int64(940), int64(940)).Return(nil).Once()

		winner := entity.PlayerOne

		// When: player one wins
		err := ratings.UpdateRatings(ctx, "m1", map[string]entity.Seat{"p1": entity.PlayerOne, "p2": entity.PlayerTwo}, &winner)

		// Then: both profiles and leaderboard records are written once
		require.NoError(t, err)
	})

	t.Run("Draw keeps ratings and counts a draw", func(t *testing.T) {
		mockProfileRepo := mockedService.NewMockprofileRepo(t)
		mockLeaderboardRepo := mockedService.NewMockleaderboardRepo(t)
		mockResultRepo := mockedService.NewMockresultRepo(t)
		ratings := NewRatingService(newTestLogger(), mockProfileRepo, mockLeaderboardRepo, mockResultRepo)

		mockResultRepo.EXPECT().Claim(ctx, "m1").Return(true, nil).Once()

		var drawn []*entity.PlayerProfile
		mockProfileRepo.EXPECT().Update(ctx, mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, apply func(*entity.PlayerProfile)) (*entity.PlayerProfile, error) {
				profile := entity.NewPlayerProfile()
				apply(profile)
				drawn = append(drawn, profile)
				return profile, nil
			}).
			Twice()

		mockLeaderboardRepo.EXPECT().Write(ctx, mock.Anything, int64(1000), int64(1000)).Return(nil).Twice()

		// When: the match ends in a draw
		err := ratings.UpdateRatings(ctx, "m1", map[string]entity.Seat{"p1": entity.PlayerOne, "p2": entity.PlayerTwo}, nil)

		// Then: both players have one draw and an unchanged rating
		require.NoError(t, err)
		require.Len(t, drawn, 2)
		for _, profile := range drawn {
			assert.Equal(t, &entity.PlayerProfile{Draws: 1, TotalGames: 1, Rating: 1000}, profile)
		}
	})

	t.Run("Loser rating stops at the floor", func(t *testing.T) {
		mockProfileRepo := mockedService.NewMockprofileRepo(t)
		mockLeaderboardRepo := mockedService.NewMockleaderboardRepo(t)
		mockResultRepo := mockedService.NewMockresultRepo(t)
		ratings := NewRatingService(newTestLogger(), mockProfileRepo, mockLeaderboardRepo, mockResultRepo)

		mockResultRepo.EXPECT().Claim(ctx, "m1").Return(true, nil).Once()
		mockProfileRepo.EXPECT().Update(ctx, "p2", mock.Anything).
			RunAndReturn(applyTo(&entity.PlayerProfile{Rating: 105})).Once()
		mockLeaderboardRepo.EXPECT().Write(ctx, "p2", int64(100), int64(100)).Return(nil).Once()

		winner := entity.PlayerOne

		err := ratings.UpdateRatings(ctx, "m1", map[string]entity.Seat{"p2": entity.PlayerTwo}, &winner)

		require.NoError(t, err)
	})

	t.Run("Already scored match is skipped", func(t *testing.T) {
		// Given: a match id that was already claimed
		mockProfileRepo := mockedService.NewMockprofileRepo(t)
		mockLeaderboardRepo := mockedService.NewMockleaderboardRepo(t)
		mockResultRepo := mockedService.NewMockresultRepo(t)
		ratings := NewRatingService(newTestLogger(), mockProfileRepo, mockLeaderboardRepo, mockResultRepo)

		mockResultRepo.EXPECT().Claim(ctx, "m1").Return(false, nil).Once()

		winner := entity.PlayerOne

		// When: the rating update runs again
		err := ratings.UpdateRatings(ctx, "m1", map[string]entity.Seat{"p1": entity.PlayerOne}, &winner)

		// Then: nothing is written
		require.NoError(t, err)
	})

	t.Run("Claim failure writes nothing", func(t *testing.T) {
		mockProfileRepo := mockedService.NewMockprofileRepo(t)
		mockLeaderboardRepo := mockedService.NewMockleaderboardRepo(t)
		mockResultRepo := mockedService.NewMockresultRepo(t)
		ratings := NewRatingService(newTestLogger(), mockProfileRepo, mockLeaderboardRepo, mockResultRepo)

		mockResultRepo.EXPECT().Claim(ctx, "m1").Return(false, errRedisDown).Once()

		err := ratings.UpdateRatings(ctx, "m1", map[string]entity.Seat{"p1": entity.PlayerOne}, nil)

		require.ErrorIs(t, err, errRedisDown)
	})

	t.Run("One failing player does not stop the other", func(t *testing.T) {
		// Given: storage fails for player one only
		mockProfileRepo := mockedService.NewMockprofileRepo(t)
		mockLeaderboardRepo := mockedService.NewMockleaderboardRepo(t)
		mockResultRepo := mockedService.NewMockresultRepo(t)
		ratings := NewRatingService(newTestLogger(), mockProfileRepo, mockLeaderboardRepo, mockResultRepo)

		mockResultRepo.EXPECT().Claim(ctx, "m1").Return(true, nil).Once()
		mockProfileRepo.EXPECT().Update(ctx, "p1", mock.Anything).Return(nil, errStorageIsFull).Once()
		mockProfileRepo.EXPECT().Update(ctx, "p2", mock.Anything).RunAndReturn(applyTo(entity.NewPlayerProfile())).Once()
		mockLeaderboardRepo.EXPECT().Write(ctx, "p2", int64(985), int64(985)).Return(nil).Once()

		winner := entity.PlayerOne

		// When: scoring the match
		err := ratings.UpdateRatings(ctx, "m1", map[string]entity.Seat{"p1": entity.PlayerOne, "p2": entity.PlayerTwo}, &winner)

		// Then: the failure is reported and player two is still scored
		require.ErrorIs(t, err, errStorageIsFull)
	})
}
