package usecase

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

//go:embed catalog.yml
var catalogYAML []byte

type gameRepo interface {
	CreateIfMissing(ctx context.Context, game *entity.Game) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
	IncrementPlayCount(ctx context.Context, id string) (int64, error)
}

// Catalog owns the arcade's game list and play counts.
type Catalog struct {
	logger *slog.Logger
	games  gameRepo
}

func NewCatalog(logger *slog.Logger, games gameRepo) *Catalog {
	return &Catalog{
		logger: logger.With("component", "catalog"),
		games:  games,
	}
}

// DefaultGames parses the bundled catalogue.
func DefaultGames() ([]*entity.Game, error) {
	var file struct {
		Games []*entity.Game `yaml:"games"`
	}

	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return file.Games, nil
}

// Seed creates every default game that is not stored yet. Existing entries are left alone.
func (that *Catalog) Seed(ctx context.Context) error {
	log := that.logger.With("method", "Seed")

	games, err := DefaultGames()
	if err != nil {
		return err
	}

	for _, game := range games {
		created, err := that.games.CreateIfMissing(ctx, game)
		if err != nil {
			return fmt.Errorf("failed to seed game %s: %w", game.ID, err)
		}

		if created {
			log.Info("seeded game", "game", game.ID)
		} else {
			log.Debug("game already exists", "game", game.ID)
		}
	}

	return nil
}

func (that *Catalog) List(ctx context.Context, activeOnly bool) ([]*entity.Game, error) {
	games, err := that.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	if !activeOnly {
		return games, nil
	}

	active := make([]*entity.Game, 0, len(games))
	for _, game := range games {
		if game.IsActive {
			active = append(active, game)
		}
	}

	return active, nil
}

func (that *Catalog) Get(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", id, err)
	}

	return game, nil
}

// IncrementPlayCount counts one started session of an active game.
func (that *Catalog) IncrementPlayCount(ctx context.Context, gameID string) error {
	game, err := that.games.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to get game %s: %w", gameID, err)
	}

	if !game.IsActive {
		return fmt.Errorf("%w: %s", apperror.ErrGameInactive, gameID)
	}

	if _, err = that.games.IncrementPlayCount(ctx, gameID); err != nil {
		return fmt.Errorf("failed to increment play count: %w", err)
	}

	return nil
}
