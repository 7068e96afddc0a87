package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var ErrMatchNotFound = errors.New("match snapshot not found")

// MatchRepository keeps the latest state of live matches for inspection.
type MatchRepository interface {
	Save(ctx context.Context, matchID string, state *entity.MatchState) error
	GetByID(ctx context.Context, matchID string) (*entity.MatchState, error)
	DeleteByID(ctx context.Context, matchID string) error
}

type dbMatch struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMatch) Save(ctx context.Context, matchID string, state *entity.MatchState) error {
	stateJSON, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not marshal match state: %w", err)
	}

	if err = that.client.Set(ctx, "match:"+matchID, stateJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set match state: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, matchID string) (*entity.MatchState, error) {
	response, err := that.client.Get(ctx, "match:"+matchID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMatchNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match state: %w", err)
	}

	state, err := entity.DecodeMatchState(response)
	if err != nil {
		return nil, fmt.Errorf("failed to decode match %s: %w", matchID, err)
	}

	return state, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, matchID string) error {
	deleted, err := that.client.Del(ctx, "match:"+matchID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match state: %w", err)
	}

	if deleted == 0 {
		return ErrMatchNotFound
	}

	return nil
}
