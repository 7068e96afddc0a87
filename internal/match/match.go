package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

const snapshotTimeout = 2 * time.Second

var ErrInputPanicked = errors.New("match failed to process input")

// Presence is a session taking part in a match.
type Presence interface {
	UserID() string
	SessionID() string
	// Joined is called from the tick that admitted the presence, before the match sends it anything.
	Joined(matchID string, presences []string)
	Send(matchID string, opCode int64, data []byte) error
}

type snapshotRepo interface {
	Save(ctx context.Context, matchID string, state *entity.MatchState) error
	DeleteByID(ctx context.Context, matchID string) error
}

type inputKind int

const (
	inputJoin inputKind = iota
	inputLeave
	inputData
)

type input struct {
	kind     inputKind
	presence Presence
	opCode   int64
	data     []byte
	reply    chan error
}

// Listing describes a live match to the directory.
type Listing struct {
	MatchID       string            `json:"matchId"`
	Label         entity.MatchLabel `json:"label"`
	Size          int               `json:"size"`
	Authoritative bool              `json:"authoritative"`

	over bool
}

// Match hosts one Handler. Inputs are queued and applied in arrival order on the
// next tick, so the handler only ever runs on the match goroutine.
type Match struct {
	id     string
	logger *slog.Logger

	handler   *Handler
	snapshots snapshotRepo

	tickRate    int
	gracePeriod time.Duration

	presences map[string]Presence

	mu      sync.Mutex
	pending []input
	label   entity.MatchLabel
	size    int
	over    bool

	done chan struct{}
}

func newMatch(id string, logger *slog.Logger, ratings RatingEngine, snapshots snapshotRepo, tickRate int, gracePeriod time.Duration) *Match {
	match := &Match{
		id:          id,
		logger:      logger.With("component", "match", "matchID", id),
		snapshots:   snapshots,
		tickRate:    tickRate,
		gracePeriod: gracePeriod,
		presences:   make(map[string]Presence),
		done:        make(chan struct{}),
	}

	match.handler = NewHandler(id, logger, match, ratings)
	match.label = match.handler.Init()

	return match
}

func (that *Match) ID() string {
	return that.id
}

// Done is closed once the match has terminated.
func (that *Match) Done() <-chan struct{} {
	return that.done
}

func (that *Match) Listing() Listing {
	that.mu.Lock()
	defer that.mu.Unlock()

	return Listing{
		MatchID:       that.id,
		Label:         that.label,
		Size:          that.size,
		Authoritative: true,
		over:          that.over,
	}
}

// Join asks the match to admit presence and waits for the decision.
func (that *Match) Join(ctx context.Context, presence Presence) error {
	reply := make(chan error, 1)

	if err := that.enqueue(input{kind: inputJoin, presence: presence, reply: reply}); err != nil {
		return err
	}

	select {
	case err := <-reply:
		return err
	case <-that.done:
		return apperror.ErrMatchEnded
	case <-ctx.Done():
		return fmt.Errorf("join match %s: %w", that.id, ctx.Err())
	}
}

func (that *Match) Leave(presence Presence) error {
	return that.enqueue(input{kind: inputLeave, presence: presence})
}

func (that *Match) SendData(presence Presence, opCode int64, data []byte) error {
	return that.enqueue(input{kind: inputData, presence: presence, opCode: opCode, data: data})
}

func (that *Match) enqueue(in input) error {
	select {
	case <-that.done:
		return apperror.ErrMatchEnded
	default:
	}

	that.mu.Lock()
	that.pending = append(that.pending, in)
	that.mu.Unlock()

	return nil
}

// BroadcastMessage sends data to every presence in the match.
func (that *Match) BroadcastMessage(opCode int64, data []byte) error {
	var errs []error

	for sessionID, presence := range that.presences {
		if err := presence.Send(that.id, opCode, data); err != nil {
			errs = append(errs, fmt.Errorf("session %s: %w", sessionID, err))
		}
	}

	return errors.Join(errs...)
}

func (that *Match) MatchLabelUpdate(label entity.MatchLabel) error {
	that.mu.Lock()
	that.label = label
	that.mu.Unlock()

	return nil
}

// run drives the match until the grace period after game end has passed or ctx is canceled.
func (that *Match) run(ctx context.Context) {
	log := that.logger.With("method", "run")

	defer close(that.done)

	ticker := time.NewTicker(time.Second / time.Duration(that.tickRate))
	defer ticker.Stop()

	var grace <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			log.Info("match stopped by host")
			that.terminate(ctx)
			return
		case <-ticker.C:
			that.tick(ctx)

			if grace == nil && that.handler.IsOver() {
				log.Debug("game over, terminating after grace period", "gracePeriod", that.gracePeriod)
				grace = time.After(that.gracePeriod)
			}
		case <-grace:
			that.terminate(ctx)
			return
		}
	}
}

func (that *Match) tick(ctx context.Context) {
	that.mu.Lock()
	inputs := that.pending
	that.pending = nil
	that.mu.Unlock()

	if len(inputs) == 0 {
		return
	}

	for _, in := range inputs {
		that.process(ctx, in)
	}

	that.mu.Lock()
	that.size = that.handler.Size()
	that.over = that.handler.IsOver()
	that.mu.Unlock()

	that.saveSnapshot(ctx)
}

// process applies one input. A panic fails only that input, a waiting join gets an error.
func (that *Match) process(ctx context.Context, in input) {
	log := that.logger.With("method", "process")

	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered from panic in tick", "kind", in.kind, "panic", r)

			if in.kind == inputJoin {
				delete(that.presences, in.presence.SessionID())
				that.replyJoin(in, fmt.Errorf("join match %s: %w", that.id, ErrInputPanicked))
			}
		}
	}()

	switch in.kind {
	case inputJoin:
		that.replyJoin(in, that.join(in.presence))
	case inputLeave:
		that.leave(in.presence)
	case inputData:
		if _, ok := that.presences[in.presence.SessionID()]; !ok {
			log.Debug("dropping data from unknown presence", "sessionID", in.presence.SessionID())
			return
		}

		that.handler.HandleData(ctx, in.presence.UserID(), in.opCode, in.data)
	}
}

// replyJoin never blocks, each join reply channel holds exactly one answer.
func (that *Match) replyJoin(in input, err error) {
	select {
	case in.reply <- err:
	default:
	}
}

func (that *Match) join(presence Presence) error {
	if err := that.handler.JoinAttempt(presence.UserID()); err != nil {
		that.logger.Info("join rejected", "identity", presence.UserID(), "reason", err)
		return err
	}

	that.presences[presence.SessionID()] = presence
	presence.Joined(that.id, that.userIDs())

	if _, err := that.handler.Join(presence.UserID()); err != nil {
		delete(that.presences, presence.SessionID())
		return err
	}

	return nil
}

// leave drops the presence. The seat is released once no session of that identity remains.
func (that *Match) leave(presence Presence) {
	if _, ok := that.presences[presence.SessionID()]; !ok {
		return
	}

	delete(that.presences, presence.SessionID())

	for _, other := range that.presences {
		if other.UserID() == presence.UserID() {
			return
		}
	}

	that.handler.Leave(presence.UserID())
}

func (that *Match) terminate(ctx context.Context) {
	that.handler.Terminate()

	that.mu.Lock()
	inputs := that.pending
	that.pending = nil
	that.mu.Unlock()

	for _, in := range inputs {
		if in.reply != nil {
			that.replyJoin(in, apperror.ErrMatchEnded)
		}
	}

	if that.snapshots == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotTimeout)
	defer cancel()

	if err := that.snapshots.DeleteByID(ctx, that.id); err != nil && !errors.Is(err, repository.ErrMatchNotFound) {
		that.logger.Warn("failed to delete match snapshot", "error", err)
	}
}

func (that *Match) saveSnapshot(ctx context.Context) {
	if that.snapshots == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	if err := that.snapshots.Save(ctx, that.id, that.handler.State()); err != nil {
		that.logger.Warn("failed to save match snapshot", "error", err)
	}
}

func (that *Match) userIDs() []string {
	seen := make(map[string]bool, len(that.presences))
	userIDs := make([]string, 0, len(that.presences))

	for _, presence := range that.presences {
		if seen[presence.UserID()] {
			continue
		}

		seen[presence.UserID()] = true
		userIDs = append(userIDs, presence.UserID())
	}

	return userIDs
}
