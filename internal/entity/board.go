package entity

// BoardSize is the number of cells on the fixed 3x3 board.
const BoardSize = 9

// Seat identifies a side of the game. The zero value marks an empty cell.
type Seat int

const (
	EmptyCell Seat = 0
	PlayerOne Seat = 1
	PlayerTwo Seat = 2
)

func (that Seat) IsPlayer() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent returns the other seat. EmptyCell has no opponent.
func (that Seat) Opponent() Seat {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return EmptyCell
	}
}

// Board is encoded as a JSON array of nine integers.
type Board [BoardSize]Seat

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}
