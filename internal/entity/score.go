package entity

import "time"

// Score is one submitted result.
type Score struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	GameID      string    `json:"game_id"`
	GameName    string    `json:"game_name"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

// User holds aggregate totals for a player.
type User struct {
	ID               string    `json:"id"`
	DisplayName      string    `json:"display_name"`
	TotalGamesPlayed int       `json:"total_games_played"`
	TotalScore       int       `json:"total_score"`
	CreatedAt        time.Time `json:"created_at"`
}

// Game is an arcade catalogue entry, keyed by slug.
type Game struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	URL         string `json:"url" yaml:"url"`
	IsActive    bool   `json:"is_active" yaml:"active"`
	PlayCount   int64  `json:"play_count" yaml:"-"`
}
