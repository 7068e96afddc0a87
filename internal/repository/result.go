package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type ResultRepository interface {
	Claim(ctx context.Context, matchID string) (bool, error)
}

type dbResult struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultRepository(client *redis.Client, ttl time.Duration) ResultRepository {
	return &dbResult{
		client: client,
		ttl:    ttl,
	}
}

// Claim marks the match as scored. Only the first caller for a match id gets true.
func (that *dbResult) Claim(ctx context.Context, matchID string) (bool, error) {
	claimed, err := that.client.SetNX(ctx, "match_result:"+matchID, time.Now().UnixMilli(), that.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim match result: %w", err)
	}

	return claimed, nil
}
