package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type LeaderboardRepository interface {
	Write(ctx context.Context, ownerID string, score, subscore int64) error
	List(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error)
}

type dbLeaderboard struct {
	client *redis.Client
	id     string
	now    func() time.Time
}

func NewLeaderboardRepository(client *redis.Client, leaderboardID string) LeaderboardRepository {
	return &dbLeaderboard{
		client: client,
		id:     leaderboardID,
		now:    time.Now,
	}
}

func (that *dbLeaderboard) scoresKey() string {
	return "leaderboard:" + that.id + ":scores"
}

func (that *dbLeaderboard) metaKey() string {
	return "leaderboard:" + that.id + ":meta"
}

// Write sets the owner's record. Scores are kept as-is, the latest write wins.
func (that *dbLeaderboard) Write(ctx context.Context, ownerID string, score, subscore int64) error {
	meta := strconv.FormatInt(subscore, 10) + ":" + strconv.FormatInt(that.now().UnixMilli(), 10)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, that.scoresKey(), redis.Z{Score: float64(score), Member: ownerID})
		pipe.HSet(ctx, that.metaKey(), ownerID, meta)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write leaderboard record: %w", err)
	}

	return nil
}

// List returns the top records by descending score, ranks start at 1.
func (that *dbLeaderboard) List(ctx context.Context, limit int) ([]entity.LeaderboardRecord, error) {
	if limit <= 0 {
		return []entity.LeaderboardRecord{}, nil
	}

	scores, err := that.client.ZRevRangeWithScores(ctx, that.scoresKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	records := make([]entity.LeaderboardRecord, 0, len(scores))
	if len(scores) == 0 {
		return records, nil
	}

	owners := make([]string, 0, len(scores))
	for _, z := range scores {
		owner, _ := z.Member.(string)
		owners = append(owners, owner)
	}

	metas, err := that.client.HMGet(ctx, that.metaKey(), owners...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard metadata: %w", err)
	}

	for i, z := range scores {
		record := entity.LeaderboardRecord{
			OwnerID:  owners[i],
			Score:    int64(z.Score),
			Subscore: int64(z.Score),
			Rank:     int64(i + 1),
		}

		if meta, ok := metas[i].(string); ok {
			record.Subscore, record.UpdateTime = parseRecordMeta(meta, record.Subscore)
		}

		records = append(records, record)
	}

	return records, nil
}

// parseRecordMeta reads "<subscore>:<updateTime>" written by Write.
func parseRecordMeta(meta string, fallback int64) (int64, int64) {
	rawSubscore, rawUpdateTime, ok := strings.Cut(meta, ":")
	if !ok {
		return fallback, 0
	}

	subscore, err := strconv.ParseInt(rawSubscore, 10, 64)
	if err != nil {
		subscore = fallback
	}

	updateTime, err := strconv.ParseInt(rawUpdateTime, 10, 64)
	if err != nil {
		updateTime = 0
	}

	return subscore, updateTime
}
