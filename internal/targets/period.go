// targets/period.go - Period bounds for week and month ranges
package targets

import (
	"errors"
	"time"

	"github.com/noor-latif/hourdash/internal/models"
)

// MaxPeriodDays bounds caller-supplied ranges
const MaxPeriodDays = 366

var (
	ErrPeriodReversed = errors.New("period ends before it starts")
	ErrPeriodTooLong  = errors.New("period longer than 366 days")
)

// CheckPeriod rejects reversed ranges and ranges spanning more than
// MaxPeriodDays days. A zero bound leaves the range open and passes.
func CheckPeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return nil
	}
	from, to = truncateDay(from), truncateDay(to)
	if to.Before(from) {
		return ErrPeriodReversed
	}
	if to.Sub(from) >= MaxPeriodDays*day {
		return ErrPeriodTooLong
	}
	return nil
}

// PeriodBounds returns the first and last UTC day of the range containing
// anchor: Monday to Sunday for weeks, the calendar month otherwise.
func PeriodBounds(r models.Range, anchor time.Time) (from, to time.Time) {
	d := truncateDay(anchor)
	if r == models.RangeMonth {
		from = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, -1)
	}
	from = WeekStart(d)
	return from, from.AddDate(0, 0, 6)
}

// WeekStart returns the Monday of t's ISO week
func WeekStart(t time.Time) time.Time {
	d := truncateDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// ParseRange maps user input to a Range, defaulting to week
func ParseRange(s string) models.Range {
	if models.Range(s) == models.RangeMonth {
		return models.RangeMonth
	}
	return models.RangeWeek
}
