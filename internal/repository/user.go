package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-arcade/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arcade/internal/entity"
)

type UserRepository interface {
	AddResult(ctx context.Context, userID, displayName string, score int) error
	Find(ctx context.Context, id string) (*entity.User, error)
}

type userRepository struct {
	conn *sql.DB
	now  func() time.Time
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
		now:  time.Now,
	}
}

// AddResult counts one more game and adds score to the user's totals, creating the user on first result.
func (that *userRepository) AddResult(ctx context.Context, userID, displayName string, score int) error {
	query := `INSERT INTO users (id, display_name, total_games_played, total_score, created_at)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			display_name = excluded.display_name,
			total_games_played = total_games_played + 1,
			total_score = total_score + excluded.total_score`

	_, err := that.conn.ExecContext(ctx, query, userID, displayName, score, that.now().Unix())
	if err != nil {
		return fmt.Errorf("can't save user result: %w", err)
	}

	return nil
}

func (that *userRepository) Find(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT id, display_name, total_games_played, total_score, created_at FROM users WHERE id = ?`

	var (
		user      entity.User
		createdAt int64
	)

	err := that.conn.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.DisplayName, &user.TotalGamesPlayed, &user.TotalScore, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	user.CreatedAt = time.Unix(createdAt, 0).UTC()

	return &user, nil
}
