package announcement

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "fundraiser/internal/domain/announcement"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new announcement store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Get retrieves an Announcement by its ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (domain.Announcement, error) {
	var a domain.Announcement
	var updatedStr string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, markdown, updated_at FROM announcement WHERE id = ?", id).
		Scan(&a.ID, &a.Markdown, &updatedStr)
	if err == sql.ErrNoRows {
		return domain.Announcement{}, fmt.Errorf("announcement not found: %w", err)
	}
	if err != nil {
		return domain.Announcement{}, err
	}
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)
	return a, nil
}

// Save upserts an Announcement.
// PRE: entity has been validated
func (s *SQLiteStore) Save(ctx context.Context, a domain.Announcement) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO announcement (id, markdown, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET markdown=excluded.markdown, updated_at=excluded.updated_at`,
		a.ID, a.Markdown, a.UpdatedAt.UTC().Format(time.RFC3339),
	)
	return err
}
