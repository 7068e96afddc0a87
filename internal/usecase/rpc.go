package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	RPCFindMatch      = "find_match"
	RPCGetLeaderboard = "get_leaderboard"
	RPCGetPlayerStats = "get_player_stats"
)

type RPCUseCase interface {
	Call(ctx context.Context, identity, id string, payload json.RawMessage) (json.RawMessage, error)
}

type matchmaker interface {
	FindOrCreateMatch(ctx context.Context, requester string) (string, error)
}

type playerStats interface {
	GetStats(ctx context.Context, identity string) (*entity.PlayerProfile, error)
	Leaderboard(ctx context.Context) ([]entity.LeaderboardRecord, error)
}

type FindMatchResponse struct {
	MatchIDs []string `json:"matchIds"`
}

type LeaderboardResponse struct {
	Leaderboard []entity.LeaderboardRecord `json:"leaderboard"`
}

type rpcFunc func(ctx context.Context, identity string, payload json.RawMessage) (any, error)

type rpcUseCase struct {
	matchmaker matchmaker
	players    playerStats

	handlers map[string]rpcFunc
}

func NewRPCUseCase(matchmaker matchmaker, players playerStats) RPCUseCase {
	useCase := &rpcUseCase{
		matchmaker: matchmaker,
		players:    players,
	}

	useCase.handlers = map[string]rpcFunc{
		RPCFindMatch:      useCase.findMatch,
		RPCGetLeaderboard: useCase.getLeaderboard,
		RPCGetPlayerStats: useCase.getPlayerStats,
	}

	return useCase
}

// Call runs the named rpc for identity and returns its JSON response.
func (that *rpcUseCase) Call(ctx context.Context, identity, id string, payload json.RawMessage) (json.RawMessage, error) {
	handler, ok := that.handlers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownRPC, id)
	}

	response, err := handler(ctx, identity, payload)
	if err != nil {
		return nil, fmt.Errorf("rpc %s: %w", id, err)
	}

	data, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s response: %w", id, err)
	}

	return data, nil
}

func (that *rpcUseCase) findMatch(ctx context.Context, identity string, _ json.RawMessage) (any, error) {
	matchID, err := that.matchmaker.FindOrCreateMatch(ctx, identity)
	if err != nil {
		return nil, err
	}

	return FindMatchResponse{MatchIDs: []string{matchID}}, nil
}

func (that *rpcUseCase) getLeaderboard(ctx context.Context, _ string, _ json.RawMessage) (any, error) {
	records, err := that.players.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []entity.LeaderboardRecord{}
	}

	return LeaderboardResponse{Leaderboard: records}, nil
}

func (that *rpcUseCase) getPlayerStats(ctx context.Context, identity string, _ json.RawMessage) (any, error) {
	profile, err := that.players.GetStats(ctx, identity)
	if err != nil {
		return nil, err
	}

	return profile, nil
}
