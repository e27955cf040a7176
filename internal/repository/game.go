package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const gamesKey = "games"

type GameRepository interface {
	CreateIfMissing(ctx context.Context, game *entity.Game) (bool, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	List(ctx context.Context) ([]*entity.Game, error)
	IncrementPlayCount(ctx context.Context, id string) (int64, error)
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

func playsKey(id string) string {
	return "game:" + id + ":plays"
}

// CreateIfMissing stores game unless an entry with the same id exists.
func (that *dbGame) CreateIfMissing(ctx context.Context, game *entity.Game) (bool, error) {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return false, fmt.Errorf("could not marshal game: %w", err)
	}

	created, err := that.client.SetNX(ctx, gameKey(game.ID), gameJSON, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set game: %w", err)
	}

	if err = that.client.SAdd(ctx, gamesKey, game.ID).Err(); err != nil {
		return created, fmt.Errorf("failed to index game: %w", err)
	}

	return created, nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	var gameCmd, playsCmd *redis.StringCmd

	_, err := that.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		gameCmd = pipe.Get(ctx, gameKey(id))
		playsCmd = pipe.Get(ctx, playsKey(id))
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return decodeGame(gameCmd, playsCmd)
}

func (that *dbGame) List(ctx context.Context) ([]*entity.Game, error) {
	ids, err := that.client.SMembers(ctx, gamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	sort.Strings(ids)

	games := make([]*entity.Game, 0, len(ids))
	for _, id := range ids {
		game, err := that.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrGameNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

func (that *dbGame) IncrementPlayCount(ctx context.Context, id string) (int64, error) {
	exists, err := that.client.Exists(ctx, gameKey(id)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check game: %w", err)
	}

	if exists == 0 {
		return 0, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	plays, err := that.client.Incr(ctx, playsKey(id)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment play count: %w", err)
	}

	return plays, nil
}

func decodeGame(gameCmd, playsCmd *redis.StringCmd) (*entity.Game, error) {
	response, err := gameCmd.Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal([]byte(response), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	plays, err := playsCmd.Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get play count: %w", err)
	}
	game.PlayCount = plays

	return &game, nil
}
