package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

const (
	actionRPC           = "rpc"
	actionMatchJoin     = "match_join"
	actionMatchLeave    = "match_leave"
	actionMatchDataSend = "match_data_send"

	actionMatch     = "match"
	actionMatchData = "match_data"
	actionError     = "error"
)

// Error codes sent back in error messages.
const (
	CodeRuntimeException  = 0
	CodeBadInput          = 3
	CodeMatchNotFound     = 4
	CodeMatchJoinRejected = 5
	CodeFunctionNotFound  = 6
)

// Message is the envelope of every frame exchanged with a client. Replies carry the request cid.
type Message struct {
	Action  string          `json:"action"`
	CID     string          `json:"cid,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RPCPayload struct {
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MatchJoinPayload struct {
	MatchID string `json:"match_id"`
}

type MatchPayload struct {
	MatchID   string   `json:"match_id"`
	Self      string   `json:"self"`
	Presences []string `json:"presences"`
}

type MatchDataPayload struct {
	MatchID string          `json:"match_id"`
	OpCode  int64           `json:"op_code"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorPayload maps domain errors to what the client is told.
func errorPayload(err error) ErrorPayload {
	switch {
	case errors.Is(err, apperror.ErrMatchFull):
		return ErrorPayload{Code: CodeMatchJoinRejected, Message: "Match is full"}
	case errors.Is(err, apperror.ErrMatchEnded):
		return ErrorPayload{Code: CodeMatchJoinRejected, Message: "Game has ended"}
	case errors.Is(err, apperror.ErrMatchNotFound):
		return ErrorPayload{Code: CodeMatchNotFound, Message: apperror.ErrMatchNotFound.Error()}
	case errors.Is(err, apperror.ErrUnknownRPC):
		return ErrorPayload{Code: CodeFunctionNotFound, Message: err.Error()}
	case errors.Is(err, errBadInput):
		return ErrorPayload{Code: CodeBadInput, Message: err.Error()}
	default:
		return ErrorPayload{Code: CodeRuntimeException, Message: "internal error"}
	}
}

// matchData accepts data either as a JSON value or as a string holding JSON.
func matchData(raw json.RawMessage) []byte {
	if len(raw) == 0 || raw[0] != '"' {
		return raw
	}

	var unquoted string
	if err := json.Unmarshal(raw, &unquoted); err != nil {
		return raw
	}

	return []byte(unquoted)
}
