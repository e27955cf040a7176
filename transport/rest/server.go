package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 5 * time.Second

// NewRouter wires every REST route onto a fresh echo instance.
func NewRouter(logger *slog.Logger, games GameHandler, scores ScoreHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.Debug("request", attrs...)
			return nil
		},
	}))

	e.GET("/ping", Ping)

	e.GET("/games", games.List)
	e.GET("/games/:id", games.Get)

	e.GET("/leaderboard", scores.GlobalLeaderboard)
	e.GET("/leaderboard/:gameID", scores.Leaderboard)
	e.GET("/players/:id", scores.Totals)
	e.GET("/players/:id/scores", scores.History)

	return e
}

// Start serves the router on port until ctx is cancelled.
func Start(ctx context.Context, e *echo.Echo, port string) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = e.Shutdown(shutdownCtx)
	}()

	if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}
