package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	profileCollection = "player_stats"
	profileKey        = "stats"

	maxUpdateRetries = 5
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrTooManyRetries    = errors.New("too many concurrent profile updates")
	errProfileKeyMissing = errors.New("identity is empty")
)

type ProfileRepository interface {
	Get(ctx context.Context, identity string) (*entity.PlayerProfile, error)
	Create(ctx context.Context, identity string, profile *entity.PlayerProfile) (bool, error)
	Update(ctx context.Context, identity string, apply func(profile *entity.PlayerProfile)) (*entity.PlayerProfile, error)
}

type dbProfile struct {
	client *redis.Client
}

func NewProfileRepository(client *redis.Client) ProfileRepository {
	return &dbProfile{
		client: client,
	}
}

// profileStorageKey scopes the player_stats/stats object to one identity.
func profileStorageKey(identity string) string {
	return profileCollection + ":" + identity + ":" + profileKey
}

func (that *dbProfile) Get(ctx context.Context, identity string) (*entity.PlayerProfile, error) {
	if identity == "" {
		return nil, errProfileKeyMissing
	}

	response, err := that.client.Get(ctx, profileStorageKey(identity)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrProfileNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile entity.PlayerProfile
	if err = json.Unmarshal(response, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// Create stores profile only if no profile exists yet. It reports whether a write happened.
func (that *dbProfile) Create(ctx context.Context, identity string, profile *entity.PlayerProfile) (bool, error) {
	if identity == "" {
		return false, errProfileKeyMissing
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return false, fmt.Errorf("failed to marshal profile: %w", err)
	}

	created, err := that.client.SetNX(ctx, profileStorageKey(identity), profileJSON, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to create profile: %w", err)
	}

	return created, nil
}

// Update runs apply on the stored profile, or on a default one, inside an optimistic WATCH transaction.
func (that *dbProfile) Update(ctx context.Context, identity string, apply func(profile *entity.PlayerProfile)) (*entity.PlayerProfile, error) {
	if identity == "" {
		return nil, errProfileKeyMissing
	}

	key := profileStorageKey(identity)

	var updated *entity.PlayerProfile

	txf := func(tx *redis.Tx) error {
		profile := entity.NewPlayerProfile()

		response, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return fmt.Errorf("failed to get profile: %w", err)
		default:
			if err = json.Unmarshal(response, profile); err != nil {
				return fmt.Errorf("failed to unmarshal profile: %w", err)
			}
		}

		apply(profile)

		profileJSON, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, profileJSON, 0)
			return nil
		})
		if err != nil {
			return err //nolint: wrapcheck // TxFailedErr is matched by the caller
		}

		updated = profile

		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}

		return updated, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrTooManyRetries, identity)
}
