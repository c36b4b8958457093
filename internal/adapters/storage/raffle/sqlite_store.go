package raffle

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	domain "fundraiser/internal/domain/raffle"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new raffle winner store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Set upserts the winning day for a month.
// PRE: value has been validated
func (s *SQLiteStore) Set(ctx context.Context, w domain.Winner) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO raffle_winner (id, year, month, day) VALUES (?, ?, ?, ?)
		ON CONFLICT(year, month) DO UPDATE SET day = excluded.day`,
		uuid.New().String(), w.Year, w.Month, w.Day,
	)
	return err
}

// Clear removes a month's winner. Clearing an undrawn month is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context, year, month int) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM raffle_winner WHERE year = ? AND month = ?", year, month)
	return err
}

// Get returns the winner for a month. The bool reports whether one was drawn.
func (s *SQLiteStore) Get(ctx context.Context, year, month int) (domain.Winner, bool, error) {
	var w domain.Winner
	err := s.db.QueryRowContext(ctx,
		"SELECT year, month, day FROM raffle_winner WHERE year = ? AND month = ?",
		year, month).Scan(&w.Year, &w.Month, &w.Day)
	if err == sql.ErrNoRows {
		return domain.Winner{}, false, nil
	}
	if err != nil {
		return domain.Winner{}, false, err
	}
	return w, true, nil
}

// List returns all winners for a year ordered by month.
func (s *SQLiteStore) List(ctx context.Context, year int) ([]domain.Winner, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT year, month, day FROM raffle_winner WHERE year = ? ORDER BY month", year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Winner
	for rows.Next() {
		var w domain.Winner
		if err := rows.Scan(&w.Year, &w.Month, &w.Day); err != nil {
			return nil, err
		}
		results = append(results, w)
	}
	return results, rows.Err()
}
