package match

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/tictactoe"
)

// Dispatcher delivers handler output to the match participants and the directory.
type Dispatcher interface {
	BroadcastMessage(opCode int64, data []byte) error
	MatchLabelUpdate(label entity.MatchLabel) error
}

// RatingEngine scores a finished match. A nil winner is a draw.
type RatingEngine interface {
	UpdateRatings(ctx context.Context, matchID string, players map[string]entity.Seat, winner *entity.Seat) error
}

// Handler is the tic-tac-toe state machine of a single match.
// It is not safe for concurrent use, the owning Match serializes every call.
type Handler struct {
	id     string
	logger *slog.Logger

	dispatcher Dispatcher
	ratings    RatingEngine

	state      *entity.MatchState
	label      entity.MatchLabel
	terminated bool

	now func() time.Time
}

func NewHandler(id string, logger *slog.Logger, dispatcher Dispatcher, ratings RatingEngine) *Handler {
	return &Handler{
		id:         id,
		logger:     logger.With("component", "match_handler", "matchID", id),
		dispatcher: dispatcher,
		ratings:    ratings,
		now:        time.Now,
	}
}

// Init resets the handler to an empty board with player one to move.
func (that *Handler) Init() entity.MatchLabel {
	that.state = entity.NewMatchState(that.now().UnixMilli())
	that.label = entity.NewMatchLabel()
	that.terminated = false

	return that.label
}

// JoinAttempt decides whether identity may take a seat. The seat itself is assigned by Join.
func (that *Handler) JoinAttempt(identity string) error {
	if that.state.IsFull() {
		return apperror.ErrMatchFull
	}

	if that.state.GameOver || that.terminated {
		return apperror.ErrMatchEnded
	}

	return nil
}

// Join seats identity in the lowest free seat. A seated identity keeps its seat.
func (that *Handler) Join(identity string) (entity.Seat, error) {
	log := that.logger.With("method", "Join", "identity", identity)

	if seat, ok := that.state.SeatOf(identity); ok {
		return seat, nil
	}

	seat := that.state.NextSeat()
	if !seat.IsPlayer() {
		return entity.EmptyCell, apperror.ErrMatchFull
	}

	that.state.Players[identity] = seat
	log.Info("player joined", "seat", int(seat))

	if !that.state.IsFull() {
		return seat, nil
	}

	that.state.StartTime = that.now().UnixMilli()
	that.label.Status = entity.LabelStatusPlaying

	if err := that.dispatcher.MatchLabelUpdate(that.label); err != nil {
		log.Error("failed to update match label", "error", err)
	}

	that.broadcast(OpCodeGameStart, GameStartMessage{
		Type:          messageTypeGameStart,
		Players:       that.playersSnapshot(),
		CurrentPlayer: that.state.CurrentPlayer,
		Board:         that.state.Board,
	})

	log.Info("game started")

	return seat, nil
}

// Leave removes identity. Losing a player ends a running game unscored.
func (that *Handler) Leave(identity string) {
	log := that.logger.With("method", "Leave", "identity", identity)

	if _, ok := that.state.SeatOf(identity); !ok {
		return
	}

	delete(that.state.Players, identity)
	log.Info("player left")

	if that.state.IsFull() || that.state.GameOver {
		return
	}

	that.state.GameOver = true

	that.broadcast(OpCodeGameEnd, GameEndMessage{
		Type:    messageTypeGameEnd,
		Board:   that.state.Board,
		Players: that.playersSnapshot(),
		Reason:  ReasonPlayerLeft,
	})

	log.Info("game ended, player left")
}

// HandleData processes one inbound match message. Anything but a well formed
// player move is dropped.
func (that *Handler) HandleData(ctx context.Context, identity string, opCode int64, data []byte) {
	log := that.logger.With("method", "HandleData", "identity", identity)

	if opCode != OpCodePlayerMove {
		log.Debug("ignoring message", "opCode", opCode)
		return
	}

	var move PlayerMoveMessage
	if err := json.Unmarshal(data, &move); err != nil || move.Position == nil {
		log.Debug("dropping malformed move", "data", string(data))
		return
	}

	if err := that.ProcessMove(ctx, identity, *move.Position); err != nil {
		log.Debug("move rejected", "position", *move.Position, "error", err)
	}
}

// ProcessMove applies a move for identity. A rejected move returns an error and
// leaves the state untouched with nothing broadcast.
func (that *Handler) ProcessMove(ctx context.Context, identity string, cell int) error {
	if that.state.Phase() == entity.PhaseTerminated || that.terminated {
		return apperror.ErrMatchEnded
	}

	seat, ok := that.state.SeatOf(identity)
	if !ok || seat != that.state.CurrentPlayer {
		return apperror.ErrOutOfTurn
	}

	board, err := tictactoe.ApplyMove(that.state.Board, cell, seat)
	if err != nil {
		return fmt.Errorf("cell %d: %w", cell, err)
	}

	that.state.Board = board

	if winner, won := tictactoe.DetectWinner(board); won {
		that.state.Winner = &winner
		that.finish(ctx, false)
		return nil
	}

	if tictactoe.IsDraw(board) {
		that.finish(ctx, true)
		return nil
	}

	that.state.CurrentPlayer = that.state.CurrentPlayer.Opponent()

	that.broadcast(OpCodeMove, MoveMessage{
		Type:          messageTypeMove,
		Board:         that.state.Board,
		CurrentPlayer: that.state.CurrentPlayer,
		Position:      cell,
		Player:        seat,
	})

	return nil
}

// finish scores the game before announcing it so storage never lags behind clients.
func (that *Handler) finish(ctx context.Context, draw bool) {
	log := that.logger.With("method", "finish")

	that.state.GameOver = true
	players := that.playersSnapshot()

	if err := that.ratings.UpdateRatings(ctx, that.id, players, that.state.Winner); err != nil {
		log.Error("failed to update ratings", "error", err)
	}

	that.broadcast(OpCodeGameEnd, GameEndMessage{
		Type:    messageTypeGameEnd,
		Board:   that.state.Board,
		Winner:  that.state.Winner,
		Players: players,
		Draw:    draw,
	})

	if draw {
		log.Info("game ended in a draw")
		return
	}

	log.Info("game ended", "winner", int(*that.state.Winner))
}

// Terminate stops all further state changes.
func (that *Handler) Terminate() {
	that.terminated = true
	that.logger.Info("match terminated")
}

func (that *Handler) State() *entity.MatchState {
	return that.state.Clone()
}

func (that *Handler) Label() entity.MatchLabel {
	return that.label
}

func (that *Handler) Size() int {
	return len(that.state.Players)
}

func (that *Handler) IsOver() bool {
	return that.state.GameOver
}

func (that *Handler) playersSnapshot() map[string]entity.Seat {
	players := make(map[string]entity.Seat, len(that.state.Players))
	for identity, seat := range that.state.Players {
		players[identity] = seat
	}

	return players
}

func (that *Handler) broadcast(opCode int64, message any) {
	data, err := json.Marshal(message)
	if err != nil {
		that.logger.Error("failed to marshal message", "opCode", opCode, "error", err)
		return
	}

	if err = that.dispatcher.BroadcastMessage(opCode, data); err != nil {
		that.logger.Error("failed to broadcast message", "opCode", opCode, "error", err)
	}
}
