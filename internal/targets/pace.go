// targets/pace.go - Eligible/elapsed day accounting for a period
package targets

import (
	"math"
	"time"

	"github.com/noor-latif/hourdash/internal/models"
)

const (
	dayLayout = "2006-01-02"
	day       = 24 * time.Hour
)

// PaceInput describes one target's period and counting policy.
// DailyHours is keyed by YYYY-MM-DD.
type PaceInput struct {
	IncludeWeekend  bool
	Mode            models.PaceMode
	IncludeZeroDays bool
	Start           time.Time
	End             time.Time
	DailyHours      map[string]float64
	Now             time.Time
}

// ParseDay parses a YYYY-MM-DD key as a UTC day
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func DayKey(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// eligibleDays lists the UTC days in [start, end] matching the weekend policy
func eligibleDays(start, end time.Time, includeWeekend bool) []time.Time {
	var days []time.Time
	for d := truncateDay(start); !d.After(truncateDay(end)); d = d.AddDate(0, 0, 1) {
		if !includeWeekend && isWeekend(d) {
			continue
		}
		days = append(days, d)
	}
	return days
}

// ComputePaceInfo counts eligible days in the period and how many of them
// have elapsed at in.Now. Past days with no recorded hours are left out of
// the elapsed count unless IncludeZeroDays is set; they still count as
// eligible. In time-aware mode today earns the elapsed fraction of its UTC day.
func ComputePaceInfo(in PaceInput) models.PaceInfo {
	if in.Start.IsZero() || in.End.IsZero() {
		return models.PaceInfo{}
	}
	days := eligibleDays(in.Start, in.End, in.IncludeWeekend)
	total := len(days)
	if total == 0 {
		return models.PaceInfo{}
	}

	today := truncateDay(in.Now)
	switch {
	case today.After(truncateDay(in.End)):
		return models.PaceInfo{
			TotalEligible:   total,
			ElapsedEligible: float64(total),
			DaysLeft:        0,
			CalendarPercent: 100,
		}
	case today.Before(truncateDay(in.Start)):
		return models.PaceInfo{
			TotalEligible: total,
			DaysLeft:      float64(total),
		}
	}

	var elapsed float64
	for _, d := range days {
		hours := in.DailyHours[DayKey(d)]
		switch {
		case d.Before(today):
			if !in.IncludeZeroDays && !(hours > 0) {
				continue
			}
			elapsed++
		case d.Equal(today):
			elapsed += todayCredit(in, hours)
		}
	}

	return models.PaceInfo{
		TotalEligible:   total,
		ElapsedEligible: Round2(elapsed),
		DaysLeft:        Round2(math.Max(0, float64(total)-elapsed)),
		CalendarPercent: Round2(ClampPct(elapsed / float64(total) * 100)),
	}
}

func todayCredit(in PaceInput, hours float64) float64 {
	counted := in.IncludeZeroDays || hours > 0
	if in.Mode != models.PaceTimeAware {
		if counted {
			return 1
		}
		return 0
	}
	frac := dayFraction(in.Now)
	if !counted && frac <= 0 {
		return 0
	}
	return frac
}

// dayFraction is the share of the UTC day elapsed at t
func dayFraction(t time.Time) float64 {
	t = t.UTC()
	return Clamp(float64(t.Sub(truncateDay(t)))/float64(day), 0, 1)
}
