package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type RatingService interface {
	UpdateRatings(ctx context.Context, matchID string, players map[string]entity.Seat, winner *entity.Seat) error
}

type resultRepo interface {
	Claim(ctx context.Context, matchID string) (bool, error)
}

type ratingService struct {
	logger *slog.Logger

	profileRepo     profileRepo
	leaderboardRepo leaderboardRepo
	resultRepo      resultRepo
}

func NewRatingService(logger *slog.Logger, profileRepo profileRepo, leaderboardRepo leaderboardRepo, resultRepo resultRepo) RatingService {
	return &ratingService{
		logger:          logger.With("component", "rating_service"),
		profileRepo:     profileRepo,
		leaderboardRepo: leaderboardRepo,
		resultRepo:      resultRepo,
	}
}

// UpdateRatings scores a finished match for every participant. A nil winner is a draw.
// A match id is scored at most once; repeated calls return nil without writing.
// A failure for one player does not stop the others, all failures are returned joined.
func (that *ratingService) UpdateRatings(ctx context.Context, matchID string, players map[string]entity.Seat, winner *entity.Seat) error {
	log := that.logger.With("method", "UpdateRatings", "matchID", matchID)

	claimed, err := that.resultRepo.Claim(ctx, matchID)
	if err != nil {
		return fmt.Errorf("failed to claim match %s: %w", matchID, err)
	}

	if !claimed {
		log.Warn("match already scored, skipping")
		return nil
	}

	var errs []error

	for identity, seat := range players {
		outcome := entity.OutcomeFor(seat, winner)

		profile, err := that.profileRepo.Update(ctx, identity, func(profile *entity.PlayerProfile) {
			profile.RecordResult(outcome)
		})
		if err != nil {
			log.Error("failed to update stats", "identity", identity, "error", err)
			errs = append(errs, fmt.Errorf("update stats for %s: %w", identity, err))
			continue
		}

		rating := int64(profile.Rating)
		if err = that.leaderboardRepo.Write(ctx, identity, rating, rating); err != nil {
			log.Error("failed to update leaderboard", "identity", identity, "error", err)
			errs = append(errs, fmt.Errorf("update leaderboard for %s: %w", identity, err))
			continue
		}

		log.Debug("stats updated", "identity", identity, "seat", int(seat), "rating", profile.Rating)
	}

	return errors.Join(errs...)
}
