package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

type catalog interface {
	List(ctx context.Context, activeOnly bool) ([]*entity.Game, error)
	Get(ctx context.Context, id string) (*entity.Game, error)
}

type GameHandler struct {
	catalog catalog
}

func NewGameHandler(catalog catalog) GameHandler {
	return GameHandler{catalog: catalog}
}

// List returns the active games; ?all=true includes inactive ones.
func (that GameHandler) List(ctx echo.Context) error {
	games, err := that.catalog.List(ctx.Request().Context(), ctx.QueryParam("all") != "true")
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, games)
}

func (that GameHandler) Get(ctx echo.Context) error {
	game, err := that.catalog.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return ctx.JSON(http.StatusOK, game)
}
