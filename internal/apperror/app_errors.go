package apperror

import "errors"

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrOutOfTurn   = errors.New("it's not your turn")

	ErrMatchFull     = errors.New("match is full")
	ErrMatchEnded    = errors.New("game has ended")
	ErrMatchNotFound = errors.New("match not found")
	ErrUnknownModule = errors.New("unknown match module")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUnknownRPC      = errors.New("unknown rpc")
)
