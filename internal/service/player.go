package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

type PlayerService interface {
	EnsureProfile(ctx context.Context, identity string) (bool, error)
	GetStats(ctx context.Context, identity string) (*entity.PlayerProfile, error)
	Leaderboard(ctx context.Context) ([]entity.LeaderboardRecord, error)
}

type profileRepo interface {
	Get(ctx context.Context, identity string) (*entity.PlayerProfile, error)
	Create(ctx context.Context, identity string, profile *entity.PlayerProfile) (bool, error)
	Update(ctx context.Context, identity string, apply func(profile *entity.PlayerProfile)) (*entity.PlayerProfile, error)
}

type leaderboardRepo interface {
	Write(ctx context.Context, ownerID string, score, subscore int64) error
	List(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error)
}

type playerService struct {
	logger *slog.Logger

	profileRepo      profileRepo
	leaderboardRepo  leaderboardRepo
	leaderboardLimit int

	now func() time.Time
}

func NewPlayerService(logger *slog.Logger, profileRepo profileRepo, leaderboardRepo leaderboardRepo, leaderboardLimit int) PlayerService {
	return &playerService{
		logger:           logger.With("component", "player_service"),
		profileRepo:      profileRepo,
		leaderboardRepo:  leaderboardRepo,
		leaderboardLimit: leaderboardLimit,
		now:              time.Now,
	}
}

// EnsureProfile runs after a successful authentication. It creates the default
// profile and seeds the leaderboard once; later calls are no-ops.
func (that *playerService) EnsureProfile(ctx context.Context, identity string) (bool, error) {
	log := that.logger.With("method", "EnsureProfile", "identity", identity)

	profile := entity.NewPlayerProfile()
	profile.CreatedAt = that.now().UnixMilli()

	created, err := that.profileRepo.Create(ctx, identity, profile)
	if err != nil {
		return false, fmt.Errorf("failed to create profile: %w", err)
	}

	if !created {
		return false, nil
	}

	rating := int64(profile.Rating)
	if err = that.leaderboardRepo.Write(ctx, identity, rating, rating); err != nil {
		return true, fmt.Errorf("failed to seed leaderboard: %w", err)
	}

	log.Info("initialized stats for new player")

	return true, nil
}

// GetStats returns the stored profile, or a default one that is not persisted.
func (that *playerService) GetStats(ctx context.Context, identity string) (*entity.PlayerProfile, error) {
	profile, err := that.profileRepo.Get(ctx, identity)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return entity.NewPlayerProfile(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (that *playerService) Leaderboard(ctx context.Context) ([]entity.LeaderboardRecord, error) {
	records, err := that.leaderboardRepo.List(ctx, that.leaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	return records, nil
}
