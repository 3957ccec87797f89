// store/interface.go - Store interface for testability
package store

import (
	"time"

	"github.com/noor-latif/hourdash/internal/models"
)

type Store interface {
	// Configs
	GetConfig(r models.Range) (*models.TargetsConfig, error)
	SaveConfig(r models.Range, cfg models.TargetsConfig) error

	// Calendar groups
	SetGroup(calendarID string, groupID int) error
	Groups() (map[string]int, error)

	// Hours
	RecordHours(entries []models.HourEntry) error
	DayTotals(from, to time.Time) ([]models.DayRow, error)
	CalendarTotals(from, to time.Time) ([]models.CalendarRow, error)

	// Balance history
	WeeklyHistory(cfg models.TargetsConfig, anchor time.Time, weeks int) ([]models.TrendEntry, error)
}
