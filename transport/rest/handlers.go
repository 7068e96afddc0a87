package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	LeaderboardHandler(w http.ResponseWriter, r *http.Request)
	MatchHandler(w http.ResponseWriter, r *http.Request)
}

type leaderboardSource interface {
	Leaderboard(ctx context.Context) ([]entity.LeaderboardRecord, error)
}

type snapshotSource interface {
	GetByID(ctx context.Context, matchID string) (*entity.MatchState, error)
}

type leaderboardResponse struct {
	Leaderboard []entity.LeaderboardRecord `json:"leaderboard"`
}

type handlers struct {
	logger      *slog.Logger
	leaderboard leaderboardSource
	snapshots   snapshotSource
}

func NewHandlers(logger *slog.Logger, leaderboard leaderboardSource, snapshots snapshotSource) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest_handlers"),
		leaderboard: leaderboard,
		snapshots:   snapshots,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *handlers) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	records, err := that.leaderboard.Leaderboard(r.Context())
	if err != nil {
		that.logger.Error("failed to read leaderboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if records == nil {
		records = []entity.LeaderboardRecord{}
	}

	that.writeJSON(w, leaderboardResponse{Leaderboard: records})
}

// MatchHandler returns the latest snapshot of a live match.
func (that *handlers) MatchHandler(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]

	state, err := that.snapshots.GetByID(r.Context(), matchID)
	if errors.Is(err, repository.ErrMatchNotFound) {
		http.Error(w, "match not found", http.StatusNotFound)
		return
	}

	if err != nil {
		that.logger.Error("failed to read match snapshot", "matchID", matchID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, state)
}

func (that *handlers) writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
