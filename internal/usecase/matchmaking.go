package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/match"
)

const defaultListLimit = 10

type MatchmakingUseCase interface {
	FindOrCreateMatch(ctx context.Context, requester string) (string, error)
}

type matchDirectory interface {
	List(ctx context.Context, query match.LabelQuery) ([]match.Listing, error)
	Create(ctx context.Context, module string) (string, error)
}

type matchmakingUseCase struct {
	logger    *slog.Logger
	directory matchDirectory
	module    string
	listLimit int
}

func NewMatchmakingUseCase(logger *slog.Logger, directory matchDirectory, module string, listLimit int) MatchmakingUseCase {
	if listLimit <= 0 {
		listLimit = defaultListLimit
	}

	return &matchmakingUseCase{
		logger:    logger.With("component", "matchmaking"),
		directory: directory,
		module:    module,
		listLimit: listLimit,
	}
}

// FindOrCreateMatch returns the first open match, or a new one when none is open.
func (that *matchmakingUseCase) FindOrCreateMatch(ctx context.Context, requester string) (string, error) {
	log := that.logger.With("method", "FindOrCreateMatch", "requester", requester)

	listings, err := that.directory.List(ctx, match.LabelQuery{
		Mode:          entity.ModeTicTacToe,
		Status:        entity.LabelStatusOpen,
		Limit:         that.listLimit,
		Authoritative: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to list matches: %w", err)
	}

	if len(listings) > 0 {
		log.Info("found open match", "matchID", listings[0].MatchID)
		return listings[0].MatchID, nil
	}

	matchID, err := that.directory.Create(ctx, that.module)
	if err != nil {
		return "", fmt.Errorf("failed to create match: %w", err)
	}

	log.Info("created new match", "matchID", matchID)

	return matchID, nil
}
