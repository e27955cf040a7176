package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const usersSchema = `CREATE TABLE IF NOT EXISTS users (
	id                 TEXT PRIMARY KEY,
	display_name       TEXT    NOT NULL DEFAULT '',
	total_games_played INTEGER NOT NULL DEFAULT 0,
	total_score        INTEGER NOT NULL DEFAULT 0,
	created_at         INTEGER NOT NULL
)`

// NewSQLite opens the database at path and creates the schema.
func NewSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("can't create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("can't connect to database: %w", err), conn.Close())
	}

	if _, err = conn.ExecContext(ctx, usersSchema); err != nil {
		return nil, errors.Join(fmt.Errorf("can't create table: %w", err), conn.Close())
	}

	return conn, nil
}
