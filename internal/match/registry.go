package match

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/pkg"
)

// LabelQuery filters live matches. Empty fields match anything, a zero Limit means no limit.
type LabelQuery struct {
	Mode          string
	Status        string
	Limit         int
	Authoritative bool
}

type Options struct {
	Node        string
	Module      string
	TickRate    int
	GracePeriod time.Duration
}

// Registry creates matches and keeps the live ones addressable by id.
type Registry struct {
	logger  *slog.Logger
	options Options

	ratings   RatingEngine
	snapshots snapshotRepo

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.RWMutex
	matches map[string]*Match
	order   []string
}

func NewRegistry(logger *slog.Logger, options Options, ratings RatingEngine, snapshots snapshotRepo) *Registry {
	ctx, cancel := context.WithCancel(context.Background())

	return &Registry{
		logger:    logger.With("component", "match_registry"),
		options:   options,
		ratings:   ratings,
		snapshots: snapshots,
		ctx:       ctx,
		cancel:    cancel,
		matches:   make(map[string]*Match),
	}
}

// Create starts a new match of the given module and returns its id.
func (that *Registry) Create(_ context.Context, module string) (string, error) {
	log := that.logger.With("method", "Create")

	if module != that.options.Module {
		return "", fmt.Errorf("%w: %s", apperror.ErrUnknownModule, module)
	}

	if that.ctx.Err() != nil {
		return "", fmt.Errorf("registry closed: %w", that.ctx.Err())
	}

	matchID := pkg.GenerateMatchID(that.options.Node)
	match := newMatch(matchID, that.logger, that.ratings, that.snapshots, that.options.TickRate, that.options.GracePeriod)

	that.mu.Lock()
	that.matches[matchID] = match
	that.order = append(that.order, matchID)
	that.mu.Unlock()

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()

		match.run(that.ctx)
		that.remove(matchID)
	}()

	log.Info("match created", "matchID", matchID)

	return matchID, nil
}

// List returns live matches matching query, oldest first.
func (that *Registry) List(_ context.Context, query LabelQuery) ([]Listing, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	listings := make([]Listing, 0, len(that.order))

	for _, matchID := range that.order {
		if query.Limit > 0 && len(listings) >= query.Limit {
			break
		}

		listing := that.matches[matchID].Listing()

		if query.Mode != "" && listing.Label.Mode != query.Mode {
			continue
		}

		if query.Status != "" && listing.Label.Status != query.Status {
			continue
		}

		if query.Authoritative && !listing.Authoritative {
			continue
		}

		// An open match whose game is already over only waits for its grace period.
		if listing.Label.IsOpen() && listing.over {
			continue
		}

		listings = append(listings, listing)
	}

	return listings, nil
}

func (that *Registry) Get(matchID string) (*Match, error) {
	if _, node, ok := pkg.SplitMatchID(matchID); !ok || node != that.options.Node {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, matchID)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	match, ok := that.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, matchID)
	}

	return match, nil
}

func (that *Registry) Count() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.matches)
}

// Close terminates every live match and waits for them to stop.
func (that *Registry) Close() {
	that.cancel()
	that.wg.Wait()
}

func (that *Registry) remove(matchID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.matches, matchID)

	for i, id := range that.order {
		if id == matchID {
			that.order = append(that.order[:i], that.order[i+1:]...)
			break
		}
	}

	that.logger.Info("match removed", "matchID", matchID)
}
