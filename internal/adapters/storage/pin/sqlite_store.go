package pin

import (
	"context"
	"database/sql"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new PIN override store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Set upserts the override PIN for a player.
// PRE: pin has passed access.NormalizePIN
func (s *SQLiteStore) Set(ctx context.Context, playerID, pin string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO player_pin (player_id, pin) VALUES (?, ?)
		ON CONFLICT(player_id) DO UPDATE SET pin = excluded.pin`,
		playerID, pin,
	)
	return err
}

// Remove deletes the override, falling back to the built-in PIN.
func (s *SQLiteStore) Remove(ctx context.Context, playerID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM player_pin WHERE player_id = ?", playerID)
	return err
}

// Get returns the override PIN, or "" when none is set.
func (s *SQLiteStore) Get(ctx context.Context, playerID string) (string, error) {
	var pin string
	err := s.db.QueryRowContext(ctx,
		"SELECT pin FROM player_pin WHERE player_id = ?", playerID).Scan(&pin)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pin, nil
}

// All returns every override keyed by player ID.
func (s *SQLiteStore) All(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT player_id, pin FROM player_pin")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var id, pin string
		if err := rows.Scan(&id, &pin); err != nil {
			return nil, err
		}
		result[id] = pin
	}
	return result, rows.Err()
}
