// Package storage provides the SQLite implementation of the session
// journal port.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/tbreslin/cadence/internal/ports"
	_ "modernc.org/sqlite"
)

// sqliteLog implements ports.SessionLog using SQLite.
type sqliteLog struct {
	db *sql.DB
}

// Ensure sqliteLog implements ports.SessionLog.
var _ ports.SessionLog = (*sqliteLog)(nil)

// New creates a new SQLite session log at dbPath.
func New(dbPath string) (ports.SessionLog, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps :memory: databases coherent and is plenty
	// for an append-only journal.
	db.SetMaxOpenConns(1)

	// WAL keeps journal appends cheap inside tick callbacks.
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	log := &sqliteLog{db: db}
	if err := log.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return log, nil
}

// NewMemory creates an in-memory session log for testing.
func NewMemory() (ports.SessionLog, error) {
	return New(":memory:")
}

// Close closes the database connection.
func (l *sqliteLog) Close() error {
	return l.db.Close()
}

// migrate creates the database schema.
func (l *sqliteLog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		seconds INTEGER NOT NULL,
		completed_at DATETIME NOT NULL,
		git_branch TEXT,
		git_commit TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_completed ON sessions(completed_at);
	CREATE INDEX IF NOT EXISTS idx_sessions_type ON sessions(type);

	CREATE TABLE IF NOT EXISTS cycles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		completed_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_cycles_completed ON cycles(completed_at);
	`

	if _, err := l.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}
