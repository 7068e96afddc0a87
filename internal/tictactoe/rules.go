package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

var (
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", apperror.ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", apperror.ErrIllegalMove)
	ErrInvalidSeat  = fmt.Errorf("%w: invalid seat", apperror.ErrIllegalMove)

	// WinCombos are evaluated in order: rows, columns, diagonals.
	WinCombos = [8][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}
)

// ApplyMove returns a copy of board with cell taken by seat.
func ApplyMove(board entity.Board, cell int, seat entity.Seat) (entity.Board, error) {
	if cell < 0 || cell >= len(board) {
		return board, fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if !seat.IsPlayer() {
		return board, fmt.Errorf("%w: seat %d", ErrInvalidSeat, seat)
	}

	if board[cell] != entity.EmptyCell {
		return board, fmt.Errorf("%w: cell %d", ErrCellOccupied, cell)
	}

	board[cell] = seat

	return board, nil
}

// DetectWinner returns the owner of the first fully owned line.
func DetectWinner(board entity.Board) (entity.Seat, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, true
		}
	}

	return entity.EmptyCell, false
}

func IsDraw(board entity.Board) bool {
	if _, ok := DetectWinner(board); ok {
		return false
	}

	return board.IsFull()
}
