package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/config"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/engine"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/match"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/repository"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/service"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-arcade/transport/rest"
	"github.com/rocketscienceinc/tictactoe-arcade/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT/SIGTERM or the first server error.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedis(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLite(ctx, conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage)
	scoreRepo := repository.NewScoreRepository(redisStorage)
	userRepo := repository.NewUserRepository(sqliteStorage)

	catalog := usecase.NewCatalog(logger, gameRepo)
	if err = catalog.Seed(ctx); err != nil {
		return fmt.Errorf("could not seed catalog: %w", err)
	}

	scoreKeeper := usecase.NewScoreKeeper(logger, scoreRepo, userRepo, gameRepo)

	auth := service.NewAuthService(conf.JWTSecretKey)
	if !auth.Enabled() {
		log.Warn("jwt-secret-key is empty, every session is anonymous and no scores are kept")
	}

	wsServer := websocket.New(logger, websocket.Deps{
		Auth:   auth,
		Engine: engine.New(engine.NewSource()),
		Plays:  catalog,
		Scores: func(player *entity.Player) match.ScoreSubmitter {
			return scoreKeeper.ForPlayer(player)
		},
	}, match.Options{
		GameID:       conf.Match.GameID,
		Difficulty:   conf.Match.Difficulty(),
		ReplyDelay:   conf.Match.ReplyDelay,
		ScoreTimeout: conf.Match.ScoreTimeout,
	})

	router := rest.NewRouter(logger, rest.NewGameHandler(catalog), rest.NewScoreHandler(scoreKeeper))

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(groupCtx, router, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	err = group.Wait()
	log.Info("Application stopped")

	return err
}
