package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/serhatramay/trend-hunter-pro/internal/app"
)

// PrefsRepository persists display preferences across sessions. Dashboard
// data itself always comes fresh from the backend.
type PrefsRepository struct {
	db *sql.DB
}

func NewPrefsRepository(path string) (*PrefsRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &PrefsRepository{db: db}, nil
}

func (r *PrefsRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *PrefsRepository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS preferences (
  key TEXT PRIMARY KEY,
  value INTEGER NOT NULL
);
`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *PrefsRepository) LoadPreferences(ctx context.Context) (app.Preferences, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return app.Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	defer rows.Close()

	var prefs app.Preferences
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return app.Preferences{}, fmt.Errorf("scan preference row: %w", err)
		}
		switch key {
		case "compact":
			prefs.Compact = value != 0
		case "relative_time":
			prefs.RelativeTime = value != 0
		}
	}
	if err := rows.Err(); err != nil {
		return app.Preferences{}, fmt.Errorf("iterate preferences: %w", err)
	}
	return prefs, nil
}

func (r *PrefsRepository) SavePreferences(ctx context.Context, prefs app.Preferences) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO preferences (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	for key, value := range map[string]bool{
		"compact":       prefs.Compact,
		"relative_time": prefs.RelativeTime,
	} {
		n := 0
		if value {
			n = 1
		}
		if _, err := stmt.ExecContext(ctx, key, n); err != nil {
			return fmt.Errorf("save preference %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit preferences: %w", err)
	}
	return nil
}
