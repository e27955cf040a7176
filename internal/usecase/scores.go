package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
	PlayerHistorySize      = 50
)

type scoreRepo interface {
	Add(ctx context.Context, score *entity.Score) error
	TopByGame(ctx context.Context, gameID string, limit int) ([]*entity.Score, error)
	Top(ctx context.Context, limit int) ([]*entity.Score, error)
	ByUser(ctx context.Context, userID string, limit int) ([]*entity.Score, error)
}

type userRepo interface {
	AddResult(ctx context.Context, userID, displayName string, score int) error
	Find(ctx context.Context, id string) (*entity.User, error)
}

type gameReader interface {
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

// ScoreKeeper records results and serves leaderboards.
type ScoreKeeper struct {
	logger *slog.Logger

	scores scoreRepo
	users  userRepo
	games  gameReader

	now func() time.Time
}

func NewScoreKeeper(logger *slog.Logger, scores scoreRepo, users userRepo, games gameReader) *ScoreKeeper {
	return &ScoreKeeper{
		logger: logger.With("component", "scores"),
		scores: scores,
		users:  users,
		games:  games,
		now:    time.Now,
	}
}

// Submit stores a score for player and adds it to the player's totals.
func (that *ScoreKeeper) Submit(ctx context.Context, player *entity.Player, gameID string, points int) (*entity.Score, error) {
	if player.IsAnonymous() {
		return nil, fmt.Errorf("submit score: %w", apperror.ErrMissingToken)
	}

	game, err := that.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
	}

	score := &entity.Score{
		UserID:      player.ID,
		DisplayName: player.Name(),
		GameID:      game.ID,
		GameName:    game.Name,
		Score:       points,
		CreatedAt:   that.now().UTC(),
	}

	if err = that.scores.Add(ctx, score); err != nil {
		return nil, fmt.Errorf("failed to add score: %w", err)
	}

	if err = that.users.AddResult(ctx, player.ID, score.DisplayName, points); err != nil {
		return score, fmt.Errorf("failed to update user totals: %w", err)
	}

	that.logger.Info("score submitted", "user", player.ID, "game", game.ID, "score", points)

	return score, nil
}

// ForPlayer binds the keeper to one player for use as a match score sink.
func (that *ScoreKeeper) ForPlayer(player *entity.Player) *PlayerScores {
	return &PlayerScores{keeper: that, player: player}
}

func (that *ScoreKeeper) Leaderboard(ctx context.Context, gameID string, limit int) ([]*entity.Score, error) {
	if _, err := that.games.GetByID(ctx, gameID); err != nil {
		return nil, fmt.Errorf("failed to get game %s: %w", gameID, err)
	}

	scores, err := that.scores.TopByGame(ctx, gameID, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return scores, nil
}

func (that *ScoreKeeper) GlobalLeaderboard(ctx context.Context, limit int) ([]*entity.Score, error) {
	scores, err := that.scores.Top(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get global leaderboard: %w", err)
	}

	return scores, nil
}

func (that *ScoreKeeper) History(ctx context.Context, userID string) ([]*entity.Score, error) {
	scores, err := that.scores.ByUser(ctx, userID, PlayerHistorySize)
	if err != nil {
		return nil, fmt.Errorf("failed to get user scores: %w", err)
	}

	return scores, nil
}

// Totals returns the player's aggregate; a player without results gets zero totals.
func (that *ScoreKeeper) Totals(ctx context.Context, userID string) (*entity.User, error) {
	user, err := that.users.Find(ctx, userID)
	if errors.Is(err, apperror.ErrNotFound) {
		return &entity.User{ID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardSize
	case limit > MaxLeaderboardSize:
		return MaxLeaderboardSize
	default:
		return limit
	}
}

// PlayerScores submits scores on behalf of one player.
type PlayerScores struct {
	keeper *ScoreKeeper
	player *entity.Player
}

// SubmitScore uses displayName for this score only; the user id stays the bound player's.
func (that *PlayerScores) SubmitScore(ctx context.Context, gameID, displayName string, points int) error {
	player := &entity.Player{ID: that.player.ID, DisplayName: displayName}

	if _, err := that.keeper.Submit(ctx, player, gameID, points); err != nil {
		return err
	}

	return nil
}
