package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Server serves the HTTP surface and mounts the websocket endpoint.
type Server struct {
	logger *slog.Logger
	router *mux.Router
	srv    *http.Server
}

func New(logger *slog.Logger, port string, handlers Handlers, socket http.Handler) *Server {
	server := &Server{
		logger: logger.With("component", "rest"),
		router: mux.NewRouter(),
	}

	server.router.HandleFunc("/ping", handlers.PingHandler).Methods(http.MethodGet)
	server.router.HandleFunc("/leaderboard", handlers.LeaderboardHandler).Methods(http.MethodGet)
	server.router.HandleFunc("/matches/{id}", handlers.MatchHandler).Methods(http.MethodGet)
	server.router.Handle("/ws", socket)

	server.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           server.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.router.ServeHTTP(w, r)
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		log.Info("shutting down HTTP server")
		shutdownErr <- that.srv.Shutdown(shutdownCtx)
	}()

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	if err := <-shutdownErr; err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
