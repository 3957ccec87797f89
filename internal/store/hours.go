// store/hours.go - Hour ingestion and period aggregates
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

type dayScanner struct {
	dest *models.DayRow
}

func (s dayScanner) Scan(rows *sql.Rows) error {
	return rows.Scan(&s.dest.Date, &s.dest.Hours)
}

type calendarScanner struct {
	dest *models.CalendarRow
}

func (s calendarScanner) Scan(rows *sql.Rows) error {
	var group sql.NullInt64
	if err := rows.Scan(&s.dest.ID, &s.dest.Hours, &group); err != nil {
		return err
	}
	if group.Valid {
		g := int(group.Int64)
		s.dest.Group = &g
	}
	return nil
}

// RecordHours upserts (date, calendar) hours in one transaction
func (db *DB) RecordHours(entries []models.HourEntry) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(qHoursUpsert)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, ok := targets.ParseDay(e.Date); !ok {
			return fmt.Errorf("invalid date %q", e.Date)
		}
		if e.CalendarID == "" {
			return fmt.Errorf("missing calendar_id for %s", e.Date)
		}
		if !targets.IsFinite(e.Hours) || e.Hours < 0 {
			return fmt.Errorf("invalid hours %v for %s/%s", e.Hours, e.Date, e.CalendarID)
		}
		if _, err := stmt.Exec(e.Date, e.CalendarID, e.Hours); err != nil {
			return fmt.Errorf("record %s/%s: %w", e.Date, e.CalendarID, err)
		}
	}
	return tx.Commit()
}

// DayTotals returns hours per day in [from, to]
func (db *DB) DayTotals(from, to time.Time) ([]models.DayRow, error) {
	rows, err := db.Query(qDayTotals, targets.DayKey(from), targets.DayKey(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows,
		func() *models.DayRow { return &models.DayRow{} },
		func(d *models.DayRow) scanner { return dayScanner{d} })
}

// CalendarTotals returns hours per calendar in [from, to] with each
// calendar's group binding when one exists
func (db *DB) CalendarTotals(from, to time.Time) ([]models.CalendarRow, error) {
	rows, err := db.Query(qCalendarTotals, targets.DayKey(from), targets.DayKey(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows,
		func() *models.CalendarRow { return &models.CalendarRow{} },
		func(c *models.CalendarRow) scanner { return calendarScanner{c} })
}
