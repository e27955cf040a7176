package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

type scoreReader interface {
	Leaderboard(ctx context.Context, gameID string, limit int) ([]*entity.Score, error)
	GlobalLeaderboard(ctx context.Context, limit int) ([]*entity.Score, error)
	History(ctx context.Context, userID string) ([]*entity.Score, error)
	Totals(ctx context.Context, userID string) (*entity.User, error)
}

type ScoreHandler struct {
	scores scoreReader
}

func NewScoreHandler(scores scoreReader) ScoreHandler {
	return ScoreHandler{scores: scores}
}

func (that ScoreHandler) GlobalLeaderboard(ctx echo.Context) error {
	limit, err := limitParam(ctx)
	if err != nil {
		return httpError(err)
	}

	scores, err := that.scores.GlobalLeaderboard(ctx.Request().Context(), limit)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, nonNil(scores))
}

func (that ScoreHandler) Leaderboard(ctx echo.Context) error {
	limit, err := limitParam(ctx)
	if err != nil {
		return httpError(err)
	}

	scores, err := that.scores.Leaderboard(ctx.Request().Context(), ctx.Param("gameID"), limit)
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, nonNil(scores))
}

func (that ScoreHandler) History(ctx echo.Context) error {
	scores, err := that.scores.History(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, nonNil(scores))
}

func (that ScoreHandler) Totals(ctx echo.Context) error {
	user, err := that.scores.Totals(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, user)
}

// limitParam reads ?limit=; absent means zero and lets the use case pick the default.
func limitParam(ctx echo.Context) (int, error) {
	raw := ctx.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit %q", apperror.ErrInvalidPayload, raw)
	}

	return limit, nil
}

func nonNil(scores []*entity.Score) []*entity.Score {
	if scores == nil {
		return []*entity.Score{}
	}
	return scores
}
