package player

import (
	"context"
	"database/sql"

	domain "fundraiser/internal/domain/player"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new roster store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Player by its ID.
// POST: Returns the entity or player.ErrPlayerNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Player, error) {
	var p domain.Player
	err := s.db.QueryRowContext(ctx,
		"SELECT id, first_name, last_name, number, pin FROM player WHERE id = ?", id).
		Scan(&p.ID, &p.FirstName, &p.LastName, &p.Number, &p.PIN)
	if err == sql.ErrNoRows {
		return domain.Player{}, domain.ErrPlayerNotFound
	}
	if err != nil {
		return domain.Player{}, err
	}
	return p, nil
}

// List retrieves the roster ordered by jersey number.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Player, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, first_name, last_name, number, pin FROM player ORDER BY number, last_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Number, &p.PIN); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// Save upserts a Player. Used by the startup seeder only.
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, p domain.Player) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO player (id, first_name, last_name, number, pin) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET first_name=excluded.first_name,
			last_name=excluded.last_name, number=excluded.number, pin=excluded.pin`,
		p.ID, p.FirstName, p.LastName, p.Number, p.PIN,
	)
	return err
}
