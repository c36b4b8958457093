package entry

import (
	"context"
	"database/sql"
	"strings"
	"time"

	domain "fundraiser/internal/domain/entry"
	"fundraiser/internal/domain/payment"
)

const entryColumns = "id, year, month, day, player_id, supporter_name, note, phone, payment_method, payment_amount, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new entry store.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func scanEntry(row interface{ Scan(...any) error }) (domain.Entry, error) {
	var e domain.Entry
	var method string
	var createdStr string
	err := row.Scan(&e.ID, &e.Year, &e.Month, &e.Day, &e.PlayerID,
		&e.SupporterName, &e.Note, &e.Phone, &method, &e.PaymentAmount, &createdStr)
	if err != nil {
		return domain.Entry{}, err
	}
	e.PaymentMethod = payment.ParseMethod(method)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	return e, nil
}

// GetByID retrieves an Entry by its ID.
// POST: Returns the entity or entry.ErrEntryNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM calendar_entry WHERE id = ?", id)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return domain.Entry{}, domain.ErrEntryNotFound
	}
	if err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}

// GetByDate retrieves the live Entry claiming (year, month, day).
// POST: Returns the entity or entry.ErrEntryNotFound when the day is free
func (s *SQLiteStore) GetByDate(ctx context.Context, year, month, day int) (domain.Entry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM calendar_entry WHERE year = ? AND month = ? AND day = ?",
		year, month, day)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return domain.Entry{}, domain.ErrEntryNotFound
	}
	if err != nil {
		return domain.Entry{}, err
	}
	return e, nil
}

// Create inserts a new Entry. The unique claim-key index is the real
// enforcement point for one-entry-per-day; the application's pre-check
// is only a UX fast path.
// PRE: entity has been validated
// POST: Entity is persisted, or entry.ErrDateClaimed on collision
func (s *SQLiteStore) Create(ctx context.Context, e domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calendar_entry (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Year, e.Month, e.Day, e.PlayerID, e.SupporterName, e.Note, e.Phone,
		string(e.PaymentMethod), e.PaymentAmount, e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrDateClaimed
	}
	return err
}

// Update rewrites an existing Entry by ID. The claim key is written as
// stored on the entity; callers never change it (edits carry the
// original date through).
// POST: Returns entry.ErrEntryNotFound if no row matched
func (s *SQLiteStore) Update(ctx context.Context, e domain.Entry) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE calendar_entry SET player_id = ?, supporter_name = ?, note = ?, phone = ?,
			payment_method = ?, payment_amount = ? WHERE id = ?`,
		e.PlayerID, e.SupporterName, e.Note, e.Phone,
		string(e.PaymentMethod), e.PaymentAmount, e.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// Delete removes an Entry, freeing its claim key for a future create.
// POST: Returns entry.ErrEntryNotFound if no row matched
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM calendar_entry WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// List retrieves entries ordered by (year, month, day). A year of 0
// means all years.
func (s *SQLiteStore) List(ctx context.Context, year int) ([]domain.Entry, error) {
	query := "SELECT " + entryColumns + " FROM calendar_entry"
	var args []any
	if year != 0 {
		query += " WHERE year = ?"
		args = append(args, year)
	}
	query += " ORDER BY year, month, day"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}
