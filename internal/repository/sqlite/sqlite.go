package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tigerrentals-client/internal/logger"

	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		token TEXT NOT NULL,
		user_id INTEGER NOT NULL DEFAULT 0,
		email TEXT NOT NULL DEFAULT '',
		saved_at INTEGER NOT NULL
	)`,
}

// Open opens (creating if needed) the local credential database and runs
// migrations. ":memory:" is accepted for tests.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	// one connection, so an in-memory database is shared by every query
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	for _, m := range migrations {
		logger.StorageCall("migrate", m)
		if _, err := db.Exec(m); err != nil {
			logger.StorageResult("migrate", 0, err)
			return fmt.Errorf("failed to migrate store: %w", err)
		}
	}
	return nil
}
