// store/metrics.go - Balance history built from stored hours
package store

import (
	"fmt"
	"time"

	"github.com/noor-latif/hourdash/internal/balance"
	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

// WeeklyHistory returns share entries for the weeks before anchor's week,
// most recent first. Weeks without hours are skipped; labels keep each
// week's real offset. Shares are per calendar under the calendar basis or
// when category mapping is off, per category otherwise.
func (db *DB) WeeklyHistory(cfg models.TargetsConfig, anchor time.Time, weeks int) ([]models.TrendEntry, error) {
	groups, err := db.Groups()
	if err != nil {
		return nil, fmt.Errorf("groups: %w", err)
	}

	current := targets.WeekStart(anchor)
	var history []models.TrendEntry
	for i := 1; i <= weeks; i++ {
		from := current.AddDate(0, 0, -7*i)
		rows, err := db.CalendarTotals(from, from.AddDate(0, 0, 6))
		if err != nil {
			return nil, fmt.Errorf("week -%d: %w", i, err)
		}
		if len(rows) == 0 {
			continue
		}

		var hours map[string]float64
		if cfg.Balance.Index.Basis == models.BasisCalendar || !cfg.Balance.UseCategoryMapping {
			hours = balance.CalendarHours(rows)
		} else {
			hours = balance.CategoryHoursByID(cfg, rows, groups)
		}
		entries := balance.ShareEntries(hours)
		if len(entries) == 0 {
			continue
		}
		history = append(history, models.TrendEntry{
			Label:      fmt.Sprintf("-%d wk", i),
			Categories: entries,
		})
	}
	return history, nil
}
