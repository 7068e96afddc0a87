package match

import "github.com/rocketscienceinc/tictactoe-arena/internal/entity"

// Opcodes of match data messages.
const (
	OpCodeGameStart  int64 = 1
	OpCodeMove       int64 = 2
	OpCodeGameEnd    int64 = 3
	OpCodePlayerMove int64 = 4
)

const (
	messageTypeGameStart = "game_start"
	messageTypeMove      = "move"
	messageTypeGameEnd   = "game_end"

	ReasonPlayerLeft = "player_left"
)

type GameStartMessage struct {
	Type          string                 `json:"type"`
	Players       map[string]entity.Seat `json:"players"`
	CurrentPlayer entity.Seat            `json:"currentPlayer"`
	Board         entity.Board           `json:"board"`
}

type MoveMessage struct {
	Type          string       `json:"type"`
	Board         entity.Board `json:"board"`
	CurrentPlayer entity.Seat  `json:"currentPlayer"`
	Position      int          `json:"position"`
	Player        entity.Seat  `json:"player"`
}

// GameEndMessage always carries winner, null for a draw or an abandoned game.
type GameEndMessage struct {
	Type    string                 `json:"type"`
	Board   entity.Board           `json:"board"`
	Winner  *entity.Seat           `json:"winner"`
	Players map[string]entity.Seat `json:"players"`
	Draw    bool                   `json:"draw,omitempty"`
	Reason  string                 `json:"reason,omitempty"`
}

// PlayerMoveMessage is the only message clients send to a match.
type PlayerMoveMessage struct {
	Position *int `json:"position"`
}
