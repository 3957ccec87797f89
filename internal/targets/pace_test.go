package targets_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

func day(s string) time.Time {
	t, ok := targets.ParseDay(s)
	if !ok {
		panic("bad day " + s)
	}
	return t
}

func at(s string, hour int) time.Time {
	return day(s).Add(time.Duration(hour) * time.Hour)
}

// 2024-06-03 is a Monday.
func TestPaceWeekdaysOnly(t *testing.T) {
	in := targets.PaceInput{
		IncludeWeekend: false,
		Mode:           models.PaceDaysOnly,
		Start:          day("2024-06-03"),
		End:            day("2024-06-09"),
		Now:            at("2024-06-05", 12),
		DailyHours: map[string]float64{
			"2024-06-03": 4,
			"2024-06-04": 0,
			"2024-06-05": 1.5,
		},
	}
	p := targets.ComputePaceInfo(in)
	assert.Equal(t, 5, p.TotalEligible)
	assert.InDelta(t, 2, p.ElapsedEligible, 1e-9, "zero-hour Tuesday is forgiven")
	assert.InDelta(t, 40, p.CalendarPercent, 1e-9)
	assert.InDelta(t, 3, p.DaysLeft, 1e-9)
}

func TestPaceDaysOnlyTodayWithoutHours(t *testing.T) {
	in := targets.PaceInput{
		Mode:       models.PaceDaysOnly,
		Start:      day("2024-06-03"),
		End:        day("2024-06-09"),
		Now:        at("2024-06-05", 12),
		DailyHours: map[string]float64{"2024-06-03": 4},
	}
	p := targets.ComputePaceInfo(in)
	assert.InDelta(t, 1, p.ElapsedEligible, 1e-9)
	assert.InDelta(t, 20, p.CalendarPercent, 1e-9)

	in.IncludeZeroDays = true
	p = targets.ComputePaceInfo(in)
	assert.InDelta(t, 3, p.ElapsedEligible, 1e-9)
	assert.InDelta(t, 60, p.CalendarPercent, 1e-9)
}

// Friday to Monday, now is Sunday noon.
func TestPaceTimeAware(t *testing.T) {
	p := targets.ComputePaceInfo(targets.PaceInput{
		IncludeWeekend: true,
		Mode:           models.PaceTimeAware,
		Start:          day("2024-06-07"),
		End:            day("2024-06-10"),
		Now:            at("2024-06-09", 12),
		DailyHours: map[string]float64{
			"2024-06-07": 3,
			"2024-06-08": 0,
			"2024-06-09": 0,
		},
	})
	assert.Equal(t, 4, p.TotalEligible)
	assert.InDelta(t, 1.5, p.ElapsedEligible, 1e-9)
	assert.InDelta(t, 37.5, p.CalendarPercent, 1e-9)
	assert.InDelta(t, 2.5, p.DaysLeft, 1e-9)
}

func TestPaceOutsidePeriod(t *testing.T) {
	base := targets.PaceInput{
		IncludeWeekend: true,
		Start:          day("2024-06-03"),
		End:            day("2024-06-09"),
	}

	after := base
	after.Now = at("2024-06-20", 8)
	p := targets.ComputePaceInfo(after)
	assert.Equal(t, models.PaceInfo{TotalEligible: 7, ElapsedEligible: 7, DaysLeft: 0, CalendarPercent: 100}, p)

	before := base
	before.Now = at("2024-05-01", 8)
	p = targets.ComputePaceInfo(before)
	assert.Equal(t, models.PaceInfo{TotalEligible: 7, DaysLeft: 7}, p)
}

func TestPaceDegenerateInput(t *testing.T) {
	assert.Equal(t, models.PaceInfo{}, targets.ComputePaceInfo(targets.PaceInput{End: day("2024-06-09"), Now: at("2024-06-05", 1)}))
	assert.Equal(t, models.PaceInfo{}, targets.ComputePaceInfo(targets.PaceInput{
		Start: day("2024-06-09"), End: day("2024-06-03"), Now: at("2024-06-05", 1),
	}))
	// a weekend-only range with weekdays-only policy has nothing eligible
	assert.Equal(t, models.PaceInfo{}, targets.ComputePaceInfo(targets.PaceInput{
		Start: day("2024-06-08"), End: day("2024-06-09"), Now: at("2024-06-08", 1),
	}))

	_, ok := targets.ParseDay("2024-13-01")
	assert.False(t, ok)
}
