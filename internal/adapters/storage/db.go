package storage

import (
	"database/sql"
	"fmt"
)

// migrations is the ordered list of schema changes. Version N is
// migrations[N-1]; MigrateDB applies everything past the recorded
// version inside one transaction per step.
var migrations = []string{
	// 1: initial schema
	`
	CREATE TABLE IF NOT EXISTS player (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		number INTEGER NOT NULL DEFAULT 0,
		pin TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS calendar_entry (
		id TEXT PRIMARY KEY,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		player_id TEXT NOT NULL,
		supporter_name TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		payment_method TEXT NOT NULL DEFAULT 'unpaid',
		payment_amount REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		FOREIGN KEY (player_id) REFERENCES player(id)
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_calendar_entry_claim
		ON calendar_entry(year, month, day);

	CREATE TABLE IF NOT EXISTS raffle_winner (
		id TEXT PRIMARY KEY,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		UNIQUE(year, month)
	);

	CREATE TABLE IF NOT EXISTS player_pin (
		player_id TEXT PRIMARY KEY,
		pin TEXT NOT NULL,
		FOREIGN KEY (player_id) REFERENCES player(id)
	);
	`,
	// 2: coach-editable announcement block
	`
	CREATE TABLE IF NOT EXISTS announcement (
		id TEXT PRIMARY KEY,
		markdown TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`,
}

// LatestSchemaVersion returns the version MigrateDB migrates to.
func LatestSchemaVersion() int {
	return len(migrations)
}

// InitDB enables WAL mode and foreign keys. Kept separate from
// migrations so tests can open a bare database.
// PRE: db is a valid database connection
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	return nil
}

// MigrateDB brings the schema up to the latest version. Each pending
// migration runs in its own transaction together with the version bump,
// so a failure leaves the recorded version accurate.
// PRE: db is a valid database connection
// POST: schema_version row equals LatestSchemaVersion()
func MigrateDB(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}

	version, err := currentVersion(db)
	if err != nil {
		return err
	}

	for v := version + 1; v <= len(migrations); v++ {
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("migration %d: begin: %w", v, err)
		}
		if _, err := tx.Exec(migrations[v-1]); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", v, err)
		}
		if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d: clear version: %w", v, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", v); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d: record version: %w", v, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d: commit: %w", v, err)
		}
	}
	return nil
}

func currentVersion(db *sql.DB) (int, error) {
	var version int
	err := db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
