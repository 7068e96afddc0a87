package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-arena/internal/config"
	"github.com/rocketscienceinc/tictactoe-arena/internal/match"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arena/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arena/internal/service"
	"github.com/rocketscienceinc/tictactoe-arena/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-arena/transport/rest"
	"github.com/rocketscienceinc/tictactoe-arena/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until ctx is canceled or a signal arrives.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, storage.Options{
		Addr:     redisAddrString,
		Password: conf.Redis.Password,
		DB:       conf.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	profileRepo := repository.NewProfileRepository(redisStorage)
	leaderboardRepo := repository.NewLeaderboardRepository(redisStorage, conf.Leaderboard.ID)
	resultRepo := repository.NewResultRepository(redisStorage, conf.Match.ResultTTL)
	matchRepo := repository.NewMatchRepository(redisStorage, conf.Match.SnapshotTTL)

	playerService := service.NewPlayerService(logger, profileRepo, leaderboardRepo, conf.Leaderboard.Limit)
	ratingService := service.NewRatingService(logger, profileRepo, leaderboardRepo, resultRepo)

	registry := match.NewRegistry(logger, match.Options{
		Node:        conf.Node,
		Module:      conf.Match.Module,
		TickRate:    conf.Match.TickRate,
		GracePeriod: conf.Match.GracePeriod,
	}, ratingService, matchRepo)
	defer registry.Close()

	matchmaking := usecase.NewMatchmakingUseCase(logger, registry, conf.Match.Module, conf.Match.ListLimit)
	rpc := usecase.NewRPCUseCase(matchmaking, playerService)

	wsServer := websocket.New(logger, conf.Session, playerService, rpc, registry)
	defer wsServer.Close()

	httpServer := rest.New(logger, conf.HTTPPort, rest.NewHandlers(logger, playerService, matchRepo), wsServer)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "node", conf.Node)

	if err = httpServer.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
