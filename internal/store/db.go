// store/db.go - Database operations
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/noor-latif/hourdash/internal/db"
	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

// Compile-time check that DB implements Store
var _ Store = (*DB)(nil)

type DB struct {
	*sql.DB
}

// New opens the database and runs migrations
func New(dbPath string) (*DB, error) {
	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return &DB{sqlDB}, nil
}

// GetConfig loads the config for a range. Stored payloads are normalized on
// the way out; a missing row returns nil.
func (db *DB) GetConfig(r models.Range) (*models.TargetsConfig, error) {
	var payload string
	err := db.QueryRow(qConfigByPeriod, r).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get config %s: %w", r, err)
	}
	cfg := targets.Normalize(payload)
	return &cfg, nil
}

// SaveConfig normalizes and stores the config for a range
func (db *DB) SaveConfig(r models.Range, cfg models.TargetsConfig) error {
	b, err := json.Marshal(targets.Normalize(cfg))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if _, err := db.Exec(qConfigUpsert, r, string(b)); err != nil {
		return fmt.Errorf("save config %s: %w", r, err)
	}
	return nil
}

// SetGroup binds a calendar to a group id (0-9)
func (db *DB) SetGroup(calendarID string, groupID int) error {
	_, err := db.Exec(qGroupUpsert, calendarID, groupID)
	return err
}

// Groups returns every calendar's group binding
func (db *DB) Groups() (map[string]int, error) {
	rows, err := db.Query(qGroupsAll)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var id string
		var g int
		if err := rows.Scan(&id, &g); err != nil {
			return nil, err
		}
		out[id] = g
	}
	return out, rows.Err()
}

// Generic scanner interface
type scanner interface {
	Scan(rows *sql.Rows) error
}

// Generic scanAll helper for scanning rows into slices
func scanAll[T any](rows *sql.Rows, newFn func() *T, scannerFn func(*T) scanner) ([]T, error) {
	var results []T
	for rows.Next() {
		item := newFn()
		if err := scannerFn(item).Scan(rows); err != nil {
			return nil, err
		}
		results = append(results, *item)
	}
	return results, rows.Err()
}
