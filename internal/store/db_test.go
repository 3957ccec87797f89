package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/store"
	"github.com/noor-latif/hourdash/internal/targets"
)

func newTestDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.New(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, ok := targets.ParseDay(s)
	require.True(t, ok)
	return d
}

func TestConfigRoundTrip(t *testing.T) {
	db := newTestDB(t)

	cfg, err := db.GetConfig(models.RangeWeek)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	in := targets.Normalize(map[string]any{
		"totalHours": 30,
		"categories": []any{map[string]any{"id": "deep", "label": "Deep", "targetHours": 25, "color": "#0f0"}},
	})
	require.NoError(t, db.SaveConfig(models.RangeWeek, in))

	got, err := db.GetConfig(models.RangeWeek)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in, *got)

	in.TotalHours = 35
	require.NoError(t, db.SaveConfig(models.RangeWeek, in))
	got, err = db.GetConfig(models.RangeWeek)
	require.NoError(t, err)
	assert.Equal(t, 35.0, got.TotalHours)

	month, err := db.GetConfig(models.RangeMonth)
	require.NoError(t, err)
	assert.Nil(t, month)
}

func TestGroups(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SetGroup("cal-a", 1))
	require.NoError(t, db.SetGroup("cal-b", 2))
	require.NoError(t, db.SetGroup("cal-a", 3))
	assert.Error(t, db.SetGroup("cal-c", 12))

	groups, err := db.Groups()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"cal-a": 3, "cal-b": 2}, groups)
}

func TestHoursAggregates(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SetGroup("work", 1))
	require.NoError(t, db.RecordHours([]models.HourEntry{
		{Date: "2024-06-03", CalendarID: "work", Hours: 6},
		{Date: "2024-06-03", CalendarID: "gym", Hours: 1},
		{Date: "2024-06-04", CalendarID: "work", Hours: 5},
		{Date: "2024-06-04", CalendarID: "work", Hours: 7},
		{Date: "2024-06-12", CalendarID: "work", Hours: 9},
	}))

	days, err := db.DayTotals(mustDay(t, "2024-06-03"), mustDay(t, "2024-06-09"))
	require.NoError(t, err)
	assert.Equal(t, []models.DayRow{{Date: "2024-06-03", Hours: 7}, {Date: "2024-06-04", Hours: 7}}, days)

	cals, err := db.CalendarTotals(mustDay(t, "2024-06-03"), mustDay(t, "2024-06-09"))
	require.NoError(t, err)
	require.Len(t, cals, 2)
	assert.Equal(t, "gym", cals[0].ID)
	assert.Equal(t, 1.0, cals[0].Hours)
	assert.Nil(t, cals[0].Group)
	assert.Equal(t, "work", cals[1].ID)
	assert.Equal(t, 13.0, cals[1].Hours)
	require.NotNil(t, cals[1].Group)
	assert.Equal(t, 1, *cals[1].Group)
}

func TestRecordHoursRejectsBadEntries(t *testing.T) {
	db := newTestDB(t)
	for _, e := range []models.HourEntry{
		{Date: "06/03/2024", CalendarID: "a", Hours: 1},
		{Date: "2024-06-03", Hours: 1},
		{Date: "2024-06-03", CalendarID: "a", Hours: -1},
	} {
		assert.Error(t, db.RecordHours([]models.HourEntry{{Date: "2024-06-01", CalendarID: "ok", Hours: 1}, e}))
	}

	days, err := db.DayTotals(mustDay(t, "2024-06-01"), mustDay(t, "2024-06-30"))
	require.NoError(t, err)
	assert.Empty(t, days, "failed batches are rolled back")
}

func TestWeeklyHistory(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.SetGroup("office", 1))
	require.NoError(t, db.SetGroup("gym", 3))
	require.NoError(t, db.RecordHours([]models.HourEntry{
		// one week back
		{Date: "2024-06-04", CalendarID: "office", Hours: 6},
		{Date: "2024-06-05", CalendarID: "gym", Hours: 2},
		// three weeks back
		{Date: "2024-05-21", CalendarID: "office", Hours: 4},
		// current week is ignored
		{Date: "2024-06-11", CalendarID: "office", Hours: 40},
	}))

	cfg := targets.DefaultConfig()
	history, err := db.WeeklyHistory(cfg, mustDay(t, "2024-06-12"), 4)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "-1 wk", history[0].Label)
	shares := map[string]float64{}
	for _, e := range history[0].Categories {
		shares[e.ID] = e.Share
	}
	assert.Equal(t, map[string]float64{"work": 0.75, "hobby": 0, "sport": 0.25}, shares)
	assert.Equal(t, "-3 wk", history[1].Label)

	cfg.Balance.Index.Basis = models.BasisCalendar
	history, err = db.WeeklyHistory(cfg, mustDay(t, "2024-06-12"), 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []models.ShareEntry{{ID: "gym", Share: 0.25}, {ID: "office", Share: 0.75}}, history[0].Categories)

	cfg.Balance.Index.Basis = models.BasisCategory
	cfg.Balance.UseCategoryMapping = false
	history, err = db.WeeklyHistory(cfg, mustDay(t, "2024-06-12"), 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, []models.ShareEntry{{ID: "gym", Share: 0.25}, {ID: "office", Share: 0.75}}, history[0].Categories,
		"without category mapping history is per calendar")
}
