// balance/overview.go - Balance card payload for the active period
package balance

import (
	"math"
	"sort"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

type OverviewInput struct {
	Config     models.TargetsConfig
	ByCal      []models.CalendarRow
	GroupsByID map[string]int
	// History feeds the trend, most recent first
	History []models.TrendEntry
}

// BuildOverview computes category and calendar shares for the period, flags
// categories drifting from their target share, and scores the distribution.
func BuildOverview(in OverviewInput) models.BalanceOverview {
	cfg := in.Config.Balance
	basis := cfg.Index.Basis
	if basis == "" {
		basis = models.BasisCategory
	}

	calHours := CalendarHours(in.ByCal)
	var total float64
	for _, h := range calHours {
		total += h
	}

	ov := models.BalanceOverview{
		Basis:      basis,
		TotalHours: targets.Round2(total),
		Categories: []models.CategoryShare{},
		Calendars:  []models.CalendarShare{},
	}

	calShares := shareMap(calHours, total)
	for id, h := range calHours {
		ov.Calendars = append(ov.Calendars, models.CalendarShare{ID: id, Hours: targets.Round2(h), Share: round4(calShares[id])})
	}
	sort.Slice(ov.Calendars, func(i, j int) bool {
		a, b := ov.Calendars[i], ov.Calendars[j]
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return a.ID < b.ID
	})

	tHours := TargetHours(in.Config)
	var catShares map[string]float64
	if cfg.UseCategoryMapping {
		catHours := CategoryHoursByID(in.Config, in.ByCal, in.GroupsByID)
		catShares = shareMap(catHours, total)
		ov.Categories = categoryShares(in.Config, catHours, catShares, tHours)
	}

	// without category mapping only calendar shares exist to score
	scoreBasis := basis
	if !cfg.UseCategoryMapping && basis != models.BasisOff {
		scoreBasis = models.BasisCalendar
	}

	if scoreBasis != models.BasisOff && total > 0 {
		if scoreBasis != models.BasisCalendar {
			ov.CategoryIndex = ComputeIndexForShares(catShares, tHours, models.BasisCategory)
		}
		if scoreBasis == models.BasisCalendar || scoreBasis == models.BasisBoth {
			ov.CalendarIndex = ComputeIndexForShares(calShares, nil, models.BasisCalendar)
		}
		switch scoreBasis {
		case models.BasisCalendar:
			ov.Index = ov.CalendarIndex
		case models.BasisBoth:
			ov.Index = math.Min(ov.CategoryIndex, ov.CalendarIndex)
		default:
			ov.Index = ov.CategoryIndex
		}
		ov.Warning = ov.Index < cfg.Thresholds.WarnIndex
	}

	trendBasis := scoreBasis
	if trendBasis == models.BasisBoth {
		trendBasis = models.BasisCategory
	}
	ov.Trend = BuildIndexTrend(TrendInput{
		History:     in.History,
		TargetHours: tHours,
		Basis:       trendBasis,
		Lookback:    cfg.Trend.LookbackWeeks,
	})
	return ov
}

// categoryShares lists categories in balance display order, then any other
// configured category, then uncategorized hours when present.
func categoryShares(cfg models.TargetsConfig, hours, shares, tHours map[string]float64) []models.CategoryShare {
	labels := make(map[string]string, len(cfg.Categories)+1)
	for _, c := range cfg.Categories {
		labels[c.ID] = c.Label
	}
	labels[models.UncategorizedID] = "Uncategorized"

	var targetSum float64
	for _, t := range tHours {
		targetSum += t
	}

	order := append([]string{}, cfg.Balance.Categories...)
	listed := make(map[string]bool, len(order))
	for _, id := range order {
		listed[id] = true
	}
	for _, c := range cfg.Categories {
		if !listed[c.ID] {
			order = append(order, c.ID)
			listed[c.ID] = true
		}
	}
	if !listed[models.UncategorizedID] && hours[models.UncategorizedID] > 0 {
		order = append(order, models.UncategorizedID)
	}

	th := cfg.Balance.Thresholds
	out := make([]models.CategoryShare, 0, len(order))
	for _, id := range order {
		var targetShare float64
		if targetSum > 0 {
			targetShare = tHours[id] / targetSum
		}
		delta := shares[id] - targetShare
		out = append(out, models.CategoryShare{
			ID:          id,
			Label:       labels[id],
			Hours:       targets.Round2(hours[id]),
			Share:       round4(shares[id]),
			TargetShare: round4(targetShare),
			Delta:       round4(delta),
			Level:       level(delta, th),
		})
	}
	return out
}

func level(delta float64, th models.BalanceThresholds) models.Level {
	switch {
	case delta > th.WarnAbove || delta < -th.WarnBelow:
		return models.LevelWarn
	case delta > th.NoticeAbove || delta < -th.NoticeBelow:
		return models.LevelNotice
	default:
		return models.LevelOK
	}
}

// CategoryHoursByID buckets calendar hours into the first category whose
// group ids contain the row's group; the rest go to UncategorizedID.
func CategoryHoursByID(cfg models.TargetsConfig, byCal []models.CalendarRow, groupsByID map[string]int) map[string]float64 {
	owner := make(map[int]string)
	for _, c := range cfg.Categories {
		for _, g := range c.GroupIDs {
			if _, taken := owner[g]; !taken {
				owner[g] = c.ID
			}
		}
	}
	out := make(map[string]float64, len(cfg.Categories)+1)
	for _, c := range cfg.Categories {
		out[c.ID] = 0
	}
	for _, row := range byCal {
		if !targets.IsFinite(row.Hours) || row.Hours <= 0 {
			continue
		}
		id := models.UncategorizedID
		if g, ok := targets.ResolveGroup(row, groupsByID); ok {
			if cat, ok := owner[g]; ok {
				id = cat
			}
		}
		out[id] += row.Hours
	}
	return out
}

// CalendarHours sums valid hours per calendar id
func CalendarHours(byCal []models.CalendarRow) map[string]float64 {
	out := make(map[string]float64, len(byCal))
	for _, row := range byCal {
		if row.ID == "" || !targets.IsFinite(row.Hours) || row.Hours <= 0 {
			continue
		}
		out[row.ID] += row.Hours
	}
	return out
}

// ShareEntries converts an hours map into trend share entries
func ShareEntries(hours map[string]float64) []models.ShareEntry {
	var total float64
	for _, h := range hours {
		total += h
	}
	shares := shareMap(hours, total)
	out := make([]models.ShareEntry, 0, len(shares))
	for id, s := range shares {
		out = append(out, models.ShareEntry{ID: id, Share: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func shareMap(hours map[string]float64, total float64) map[string]float64 {
	out := make(map[string]float64, len(hours))
	if total <= 0 {
		return out
	}
	for id, h := range hours {
		out[id] = h / total
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
