package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerOne
	o = entity.PlayerTwo
	e = entity.EmptyCell
)

func TestApplyMove(t *testing.T) {
	t.Run("Places the seat on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := entity.Board{}

		// When: player one plays the center
		next, err := ApplyMove(board, 4, x)

		// Then: only the center is taken and the input board is untouched
		require.NoError(t, err)
		assert.Equal(t, entity.Board{e, e, e, e, x, e, e, e, e}, next)
		assert.Equal(t, entity.Board{}, board)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is taken by player one
		board := entity.Board{x, e, e, e, e, e, e, e, e}

		// When: player two tries the same cell
		next, err := ApplyMove(board, 0, o)

		// Then: the move is illegal and the board is unchanged
		require.ErrorIs(t, err, ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, board, next)
	})

	t.Run("Error on invalid cell index", func(t *testing.T) {
		for _, cell := range []int{-1, 9, 20} {
			// When: an out of range cell is played
			_, err := ApplyMove(entity.Board{}, cell, x)

			// Then: ErrInvalidCell is returned
			assert.ErrorIs(t, err, ErrInvalidCell, "cell %d", cell)
			assert.ErrorIs(t, err, apperror.ErrIllegalMove, "cell %d", cell)
		}
	})

	t.Run("Error on empty seat", func(t *testing.T) {
		// When: a move is made without a seat
		_, err := ApplyMove(entity.Board{}, 0, entity.EmptyCell)

		// Then: the move is rejected
		assert.ErrorIs(t, err, ErrInvalidSeat)
	})
}

func TestDetectWinner(t *testing.T) {
	t.Run("Every fully owned line wins for its owner", func(t *testing.T) {
		for _, seat := range []entity.Seat{x, o} {
			for _, combo := range WinCombos {
				// Given: a board where only one line is owned by seat
				var board entity.Board
				for _, cell := range combo {
					board[cell] = seat
				}

				// When: detecting the winner
				winner, ok := DetectWinner(board)

				// Then: the owner of the line wins
				require.True(t, ok, "combo %v", combo)
				assert.Equal(t, seat, winner, "combo %v", combo)
			}
		}
	})

	t.Run("No winner on an ongoing board", func(t *testing.T) {
		// Given: a board with no complete line
		board := entity.Board{x, o, e, e, x, e, e, e, o}

		// When: detecting the winner
		winner, ok := DetectWinner(board)

		// Then: there is no winner
		assert.False(t, ok)
		assert.Equal(t, entity.EmptyCell, winner)
	})

	t.Run("Returns the first line in evaluation order", func(t *testing.T) {
		// Given: an impossible board where both seats own a row
		board := entity.Board{o, o, o, x, x, x, e, e, e}

		// When: detecting the winner
		winner, ok := DetectWinner(board)

		// Then: the top row is evaluated first
		require.True(t, ok)
		assert.Equal(t, o, winner)
	})

	t.Run("Winner only when the seat owns an entire line", func(t *testing.T) {
		// Given: every board with exactly three cells of one seat
		for a := 0; a < entity.BoardSize; a++ {
			for b := a + 1; b < entity.BoardSize; b++ {
				for c := b + 1; c < entity.BoardSize; c++ {
					var board entity.Board
					board[a], board[b], board[c] = x, x, x

					// When: detecting the winner
					_, ok := DetectWinner(board)

					// Then: a win is reported iff the cells form a line
					assert.Equal(t, isLine(a, b, c), ok, "cells %d %d %d", a, b, c)
				}
			}
		}
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, x}

		assert.True(t, IsDraw(board))
	})

	t.Run("Full board with a line is not a draw", func(t *testing.T) {
		board := entity.Board{x, x, x, o, o, x, x, o, o}

		assert.False(t, IsDraw(board))
	})

	t.Run("Board with empty cells is not a draw", func(t *testing.T) {
		board := entity.Board{x, o, x, x, o, o, o, x, e}

		assert.False(t, IsDraw(board))
	})
}

func isLine(a, b, c int) bool {
	for _, combo := range WinCombos {
		if combo == [3]int{a, b, c} {
			return true
		}
	}

	return false
}
