package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open opens a SQLite database connection and configures pragmas.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set pragmas for performance and correctness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return db, nil
}

// schema is the full database schema. Status is deliberately unconstrained
// at the storage level; the service layer decides which values it accepts.
const schema = `
CREATE TABLE IF NOT EXISTS cars (
    id       INTEGER PRIMARY KEY,
    make     TEXT NOT NULL,
    model    TEXT NOT NULL,
    nickname TEXT,
    year     TEXT
);

CREATE TABLE IF NOT EXISTS mod_items (
    id             INTEGER PRIMARY KEY,
    name           TEXT NOT NULL,
    category       TEXT,
    cost           TEXT NOT NULL DEFAULT '0',
    status         TEXT NOT NULL DEFAULT 'Planned',
    notes          TEXT,
    link           TEXT,
    created_date   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    completed_date DATETIME,
    car_id         INTEGER REFERENCES cars(id) ON DELETE SET NULL,
    photo_path     TEXT,
    receipt_path   TEXT
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
