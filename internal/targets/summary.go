// targets/summary.go - Orchestrates pace, progress and forecast for a period
package targets

import (
	"slices"
	"time"

	"github.com/noor-latif/hourdash/internal/models"
)

// SummaryInput carries everything one summary is computed from.
// Config is expected to be normalized already.
type SummaryInput struct {
	Config     models.TargetsConfig
	Stats      *models.Stats
	ByDay      []models.DayRow
	ByCal      []models.CalendarRow
	GroupsByID map[string]int
	Range      models.Range
	From       time.Time
	To         time.Time
	Now        time.Time
}

// BuildTargetsSummary builds the total and per-category progress records and
// the forecast for the total.
func BuildTargetsSummary(in SummaryInput) models.TargetsSummary {
	cfg := in.Config
	daily := DailyHours(in.ByDay)

	pace := func(includeWeekend bool, mode models.PaceMode) models.PaceInfo {
		return ComputePaceInfo(PaceInput{
			IncludeWeekend:  includeWeekend,
			Mode:            mode,
			IncludeZeroDays: cfg.IncludeZeroDaysInStats,
			Start:           in.From,
			End:             in.To,
			DailyHours:      daily,
			Now:             in.Now,
		})
	}

	totalActual := CategoryHours(nil, in.ByCal, in.GroupsByID)
	if in.Stats != nil && in.Stats.TotalHours > 0 && IsFinite(in.Stats.TotalHours) {
		totalActual = in.Stats.TotalHours
	}
	totalPace := pace(cfg.Pace.IncludeWeekendTotal, cfg.Pace.Mode)
	total := MakeProgress(ProgressInput{
		ID:             TotalID,
		Label:          "Total",
		Actual:         totalActual,
		Target:         cfg.TotalHours,
		Pace:           totalPace,
		Thresholds:     cfg.Pace.Thresholds,
		IncludeWeekend: cfg.Pace.IncludeWeekendTotal,
		PaceMode:       cfg.Pace.Mode,
	})

	cats := make([]models.TargetsProgress, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		cats = append(cats, MakeProgress(ProgressInput{
			ID:             c.ID,
			Label:          c.Label,
			Actual:         CategoryHours(c.GroupIDs, in.ByCal, in.GroupsByID),
			Target:         c.TargetHours,
			Pace:           pace(c.IncludeWeekend, c.PaceMode),
			Thresholds:     cfg.Pace.Thresholds,
			IncludeWeekend: c.IncludeWeekend,
			PaceMode:       c.PaceMode,
		}))
	}

	var from, to string
	if !in.From.IsZero() {
		from = DayKey(in.From)
	}
	if !in.To.IsZero() {
		to = DayKey(in.To)
	}
	return models.TargetsSummary{
		Range:      in.Range,
		From:       from,
		To:         to,
		Total:      total,
		Categories: cats,
		Forecast: ComputeForecast(ForecastInput{
			Config:     cfg,
			Total:      total,
			DailyHours: daily,
			Pace:       totalPace,
		}),
	}
}

// CategoryHours sums byCal rows whose group is in groupIDs. A row's own group
// wins over groupsByID. With no group ids every row counts. Rows with
// non-finite or non-positive hours are skipped.
func CategoryHours(groupIDs []int, byCal []models.CalendarRow, groupsByID map[string]int) float64 {
	var sum float64
	for _, row := range byCal {
		if !IsFinite(row.Hours) || row.Hours <= 0 {
			continue
		}
		if len(groupIDs) > 0 {
			g, ok := ResolveGroup(row, groupsByID)
			if !ok || !slices.Contains(groupIDs, g) {
				continue
			}
		}
		sum += row.Hours
	}
	return sum
}

// ResolveGroup returns the row's group, falling back to groupsByID
func ResolveGroup(row models.CalendarRow, groupsByID map[string]int) (int, bool) {
	if row.Group != nil {
		return *row.Group, true
	}
	g, ok := groupsByID[row.ID]
	return g, ok
}

// DailyHours indexes day rows by date, summing duplicates
func DailyHours(rows []models.DayRow) map[string]float64 {
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		if r.Date == "" || !IsFinite(r.Hours) {
			continue
		}
		out[r.Date] += r.Hours
	}
	return out
}
