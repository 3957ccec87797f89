package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

func labConfig() models.TargetsConfig {
	return targets.Normalize(map[string]any{
		"totalHours": 40,
		"categories": []any{
			map[string]any{"id": "work", "label": "Work", "targetHours": 24, "includeWeekend": false, "groupIds": []any{1}},
			map[string]any{"id": "lab", "label": "Lab", "targetHours": 8, "includeWeekend": true, "groupIds": []any{2}},
		},
	})
}

func TestBuildTargetsSummary(t *testing.T) {
	s := targets.BuildTargetsSummary(targets.SummaryInput{
		Config: labConfig(),
		ByCal: []models.CalendarRow{
			{ID: "cal-work", Hours: 18},
			{ID: "cal-lab", Hours: 7},
		},
		GroupsByID: map[string]int{"cal-work": 1, "cal-lab": 2},
		ByDay: []models.DayRow{
			{Date: "2024-06-03", Hours: 10},
			{Date: "2024-06-04", Hours: 15},
		},
		Range: models.RangeWeek,
		From:  day("2024-06-03"),
		To:    day("2024-06-09"),
		Now:   at("2024-06-05", 6),
	})

	assert.Equal(t, "total", s.Total.ID)
	assert.Equal(t, 25.0, s.Total.ActualHours)
	assert.Equal(t, 40.0, s.Total.TargetHours)
	assert.Equal(t, "2024-06-03", s.From)
	assert.Equal(t, "2024-06-09", s.To)
	require.Len(t, s.Categories, 2)

	work, lab := s.Categories[0], s.Categories[1]
	assert.Equal(t, "work", work.ID)
	assert.Equal(t, 18.0, work.ActualHours)
	assert.Equal(t, 75.0, work.Percent)
	assert.False(t, work.IncludeWeekend)
	assert.Equal(t, "lab", lab.ID)
	assert.Equal(t, 7.0, lab.ActualHours)
	assert.True(t, lab.IncludeWeekend)

	// weekday-only Work: Mon+Tue elapsed of 5, Lab: Mon+Tue of 7
	assert.Equal(t, 40.0, work.CalendarPercent)
	assert.Equal(t, 28.57, lab.CalendarPercent)
	assert.Equal(t, models.ForecastLinear, s.Forecast.PrimaryMethod)
}

func TestBuildTargetsSummaryRowGroupWins(t *testing.T) {
	g := 2
	s := targets.BuildTargetsSummary(targets.SummaryInput{
		Config: labConfig(),
		ByCal: []models.CalendarRow{
			{ID: "cal-a", Hours: 5, Group: &g},
			{ID: "cal-b", Hours: -3},
			{ID: "cal-c", Hours: 2},
		},
		GroupsByID: map[string]int{"cal-a": 1, "cal-b": 1},
	})
	assert.Equal(t, 7.0, s.Total.ActualHours)
	assert.Equal(t, 0.0, s.Categories[0].ActualHours)
	assert.Equal(t, 5.0, s.Categories[1].ActualHours)
	assert.Equal(t, 0.0, s.Total.CalendarPercent, "no range, no pace")
}

func TestBuildTargetsSummaryStatsOverride(t *testing.T) {
	s := targets.BuildTargetsSummary(targets.SummaryInput{
		Config: labConfig(),
		Stats:  &models.Stats{TotalHours: 31.5},
		ByCal:  []models.CalendarRow{{ID: "x", Hours: 4}},
	})
	assert.Equal(t, 31.5, s.Total.ActualHours)
}

func TestCategoryHoursWithoutGroups(t *testing.T) {
	rows := []models.CalendarRow{{ID: "a", Hours: 1.5}, {ID: "b", Hours: 2}}
	assert.Equal(t, 3.5, targets.CategoryHours(nil, rows, nil))
	assert.Equal(t, 0.0, targets.CategoryHours([]int{4}, rows, nil))
}
