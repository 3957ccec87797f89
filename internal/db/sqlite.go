// db/sqlite.go - Connection setup and schema migrations
package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open creates/opens the database file and runs migrations
func Open(dbPath string) (*sql.DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	if err := migrate(sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return sqlDB, nil
}

// migrate creates tables
func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS configs (
		period TEXT PRIMARY KEY CHECK(period IN ('week', 'month')),
		payload TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS calendar_groups (
		calendar_id TEXT PRIMARY KEY,
		group_id INTEGER NOT NULL CHECK(group_id BETWEEN 0 AND 9)
	);

	CREATE TABLE IF NOT EXISTS hours (
		date TEXT NOT NULL,
		calendar_id TEXT NOT NULL,
		hours REAL NOT NULL DEFAULT 0 CHECK(hours >= 0),
		PRIMARY KEY (date, calendar_id)
	);

	CREATE INDEX IF NOT EXISTS idx_hours_calendar ON hours(calendar_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// LogError is a simple error logger
func LogError(msg string, err error) {
	if err != nil {
		log.Printf("[ERROR] %s: %v", msg, err)
	}
}
