package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	ModeTicTacToe = "tic_tac_toe"

	LabelStatusOpen    = "open"
	LabelStatusPlaying = "playing"
)

const MaxPlayers = 2

var ErrInvalidMatchState = errors.New("invalid match state")

// Phase is derived from MatchState, it is never stored.
type Phase string

const (
	PhaseAwaitingPlayers Phase = "awaiting_players"
	PhasePlaying         Phase = "playing"
	PhaseTerminated      Phase = "terminated"
)

// MatchLabel is the discovery metadata attached to a match.
type MatchLabel struct {
	Mode   string `json:"mode"`
	Status string `json:"status"`
}

func NewMatchLabel() MatchLabel {
	return MatchLabel{
		Mode:   ModeTicTacToe,
		Status: LabelStatusOpen,
	}
}

func (that MatchLabel) IsOpen() bool {
	return that.Status == LabelStatusOpen
}

type MatchState struct {
	Board         Board           `json:"board"`
	CurrentPlayer Seat            `json:"currentPlayer"`
	Players       map[string]Seat `json:"players"`
	Winner        *Seat           `json:"winner"`
	GameOver      bool            `json:"gameOver"`
	StartTime     int64           `json:"startTime"`
}

func NewMatchState(startTime int64) *MatchState {
	return &MatchState{
		CurrentPlayer: PlayerOne,
		Players:       make(map[string]Seat, MaxPlayers),
		StartTime:     startTime,
	}
}

func (that *MatchState) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

func (that *MatchState) SeatOf(identity string) (Seat, bool) {
	seat, ok := that.Players[identity]
	return seat, ok
}

// NextSeat returns the lowest seat not held by anyone, or EmptyCell when both are taken.
func (that *MatchState) NextSeat() Seat {
	taken := make(map[Seat]bool, len(that.Players))
	for _, seat := range that.Players {
		taken[seat] = true
	}

	for _, seat := range []Seat{PlayerOne, PlayerTwo} {
		if !taken[seat] {
			return seat
		}
	}

	return EmptyCell
}

func (that *MatchState) Phase() Phase {
	switch {
	case that.GameOver:
		return PhaseTerminated
	case that.IsFull():
		return PhasePlaying
	default:
		return PhaseAwaitingPlayers
	}
}

// Clone returns a deep copy safe to hand out of the owning match.
func (that *MatchState) Clone() *MatchState {
	clone := *that

	clone.Players = make(map[string]Seat, len(that.Players))
	for identity, seat := range that.Players {
		clone.Players[identity] = seat
	}

	if that.Winner != nil {
		winner := *that.Winner
		clone.Winner = &winner
	}

	return &clone
}

// DecodeMatchState parses and validates a stored match state.
func DecodeMatchState(data []byte) (*MatchState, error) {
	var state MatchState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match state: %w", err)
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	if state.Players == nil {
		state.Players = make(map[string]Seat, MaxPlayers)
	}

	return &state, nil
}

func (that *MatchState) Validate() error {
	for i, cell := range that.Board {
		if cell != EmptyCell && !cell.IsPlayer() {
			return fmt.Errorf("%w: cell %d holds %d", ErrInvalidMatchState, i, cell)
		}
	}

	if !that.CurrentPlayer.IsPlayer() {
		return fmt.Errorf("%w: current player %d", ErrInvalidMatchState, that.CurrentPlayer)
	}

	if len(that.Players) > MaxPlayers {
		return fmt.Errorf("%w: %d players", ErrInvalidMatchState, len(that.Players))
	}

	seen := make(map[Seat]bool, len(that.Players))
	for identity, seat := range that.Players {
		if !seat.IsPlayer() || seen[seat] {
			return fmt.Errorf("%w: seat %d for %s", ErrInvalidMatchState, seat, identity)
		}
		seen[seat] = true
	}

	if that.Winner != nil && (!that.GameOver || !that.Winner.IsPlayer()) {
		return fmt.Errorf("%w: winner without game over", ErrInvalidMatchState)
	}

	return nil
}
