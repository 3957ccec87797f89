// targets/config.go - Configuration normalizer
package targets

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/noor-latif/hourdash/internal/models"
)

const (
	maxGroupID          = 9
	minMomentumDays     = 1
	maxMomentumDays     = 14
	maxPadding          = 100
	maxThreshold        = 100
	minLookbackWeeks    = 1
	maxLookbackWeeks    = 6
	balanceFallbackSize = 4
)

var colorRe = regexp.MustCompile(`(?i)^#([0-9a-f]{3}|[0-9a-f]{6})$`)

// DefaultCategories returns the built-in Work/Hobby/Sport categories
func DefaultCategories() []models.TargetCategoryConfig {
	return []models.TargetCategoryConfig{
		{ID: "work", Label: "Work", TargetHours: 32, IncludeWeekend: false, PaceMode: models.PaceDaysOnly, Color: "#2563EB", GroupIDs: []int{1}},
		{ID: "hobby", Label: "Hobby", TargetHours: 6, IncludeWeekend: true, PaceMode: models.PaceDaysOnly, Color: "#F59E0B", GroupIDs: []int{2}},
		{ID: "sport", Label: "Sport", TargetHours: 4, IncludeWeekend: true, PaceMode: models.PaceDaysOnly, Color: "#10B981", GroupIDs: []int{3}},
	}
}

// DefaultConfig returns a fresh default configuration
func DefaultConfig() models.TargetsConfig {
	cats := DefaultCategories()
	return models.TargetsConfig{
		TotalHours: 48,
		Categories: cats,
		Pace: models.PaceConfig{
			IncludeWeekendTotal: true,
			Mode:                models.PaceDaysOnly,
			Thresholds:          models.PaceThresholds{OnTrack: -2, AtRisk: -10},
		},
		Forecast: models.ForecastConfig{
			MethodPrimary:     models.ForecastLinear,
			MomentumLastNDays: 2,
			Padding:           1.5,
		},
		ActivityCard: models.ActivityCardConfig{
			ShowWeekendShare:   true,
			ShowEveningShare:   true,
			ShowEarliestLatest: true,
			ShowOverlaps:       true,
			ShowLongestSession: true,
			ShowLastDay:        true,
			ShowHint:           true,
		},
		Balance:                defaultBalance(categoryIDs(cats)),
		IncludeZeroDaysInStats: false,
	}
}

func defaultBalance(ids []string) models.BalanceConfig {
	return models.BalanceConfig{
		Categories:         fallbackBalanceCategories(ids),
		UseCategoryMapping: true,
		Index:              models.BalanceIndex{Basis: models.BasisCategory},
		Thresholds: models.BalanceThresholds{
			NoticeAbove: 0.15,
			NoticeBelow: 0.15,
			WarnAbove:   0.30,
			WarnBelow:   0.30,
			WarnIndex:   0.60,
		},
		Trend: models.BalanceTrend{LookbackWeeks: 4},
		UI:    models.BalanceUI{ShowInsights: true, ShowDailyStacks: true, ShowNotes: false},
	}
}

// Normalize converts arbitrary input into a canonical TargetsConfig.
// raw may be nil, a JSON string or byte slice, a decoded JSON object, or any
// value that encodes to a JSON object. It never fails: unusable input yields
// defaults, per field where the rest of the object is usable. The result
// shares no memory with raw.
func Normalize(raw any) models.TargetsConfig {
	obj, ok := decodeObject(raw)
	if !ok {
		return DefaultConfig()
	}
	base := DefaultConfig()

	cats := normalizeCategories(obj["categories"])
	if len(cats) == 0 {
		cats = DefaultCategories()
	}

	return models.TargetsConfig{
		TotalHours:             ClampTarget(numberOr(obj, "totalHours", base.TotalHours)),
		Categories:             cats,
		Pace:                   mergePace(base.Pace, objectOf(obj, "pace")),
		Forecast:               mergeForecast(base.Forecast, objectOf(obj, "forecast")),
		ActivityCard:           mergeActivity(base.ActivityCard, objectOf(obj, "activityCard")),
		Balance:                mergeBalance(defaultBalance(categoryIDs(cats)), objectOf(obj, "balance"), categoryIDs(cats)),
		IncludeZeroDaysInStats: boolOr(obj, "includeZeroDaysInStats", base.IncludeZeroDaysInStats),
	}
}

func normalizeCategories(v any) []models.TargetCategoryConfig {
	list := asList(v)
	out := make([]models.TargetCategoryConfig, 0, len(list))
	seen := make(map[string]int)
	for i, item := range list {
		obj, ok := asObject(item)
		if !ok {
			continue
		}
		cat := normalizeCategory(obj, i)
		cat.ID = uniqueID(cat.ID, seen)
		out = append(out, cat)
	}
	return out
}

func normalizeCategory(obj map[string]any, i int) models.TargetCategoryConfig {
	label := strings.TrimSpace(stringOr(obj, "label", ""))
	if label == "" {
		label = fmt.Sprintf("Category %d", i+1)
	}
	id := strings.TrimSpace(stringOr(obj, "id", ""))
	if id == "" {
		id = CategoryID(label)
	}
	mode := models.PaceDaysOnly
	if stringOr(obj, "paceMode", "") == string(models.PaceTimeAware) {
		mode = models.PaceTimeAware
	}
	return models.TargetCategoryConfig{
		ID:             id,
		Label:          label,
		TargetHours:    ClampTarget(numberOr(obj, "targetHours", 0)),
		IncludeWeekend: truthy(obj["includeWeekend"]),
		PaceMode:       mode,
		Color:          NormalizeColor(obj["color"]),
		GroupIDs:       normalizeGroupIDs(obj["groupIds"]),
	}
}

// uniqueID suffixes repeated ids with -2, -3, ...
func uniqueID(id string, seen map[string]int) string {
	n := seen[id]
	seen[id] = n + 1
	if n == 0 {
		return id
	}
	for {
		n++
		candidate := id + "-" + strconv.Itoa(n)
		if seen[candidate] == 0 {
			seen[candidate] = 1
			seen[id] = n
			return candidate
		}
	}
}

// CategoryID derives a stable id from a label with a 32-bit string hash
// (h = h*31 + c, wrapping). Not cryptographic: two labels can collide, so
// callers needing guaranteed uniqueness should supply explicit ids.
func CategoryID(label string) string {
	var h int32
	for _, r := range label {
		h = h*31 + int32(r)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return "cat-" + strconv.FormatInt(n, 36)
}

// NormalizeColor validates a 3/6 digit hex colour and returns #RRGGBB
// upper-cased, or "" when invalid.
func NormalizeColor(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	s = strings.TrimSpace(s)
	if !colorRe.MatchString(s) {
		return ""
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	return "#" + strings.ToUpper(hex)
}

func normalizeGroupIDs(v any) []int {
	out := []int{}
	seen := make(map[int]bool)
	for _, item := range asList(v) {
		n, ok := toNumber(item)
		if !ok || n != math.Trunc(n) || n < 0 || n > maxGroupID {
			continue
		}
		g := int(n)
		if seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}

func mergePace(base models.PaceConfig, o map[string]any) models.PaceConfig {
	out := base
	out.IncludeWeekendTotal = boolOr(o, "includeWeekendTotal", base.IncludeWeekendTotal)
	switch models.PaceMode(stringOr(o, "mode", "")) {
	case models.PaceTimeAware:
		out.Mode = models.PaceTimeAware
	case models.PaceDaysOnly:
		out.Mode = models.PaceDaysOnly
	}
	th := objectOf(o, "thresholds")
	out.Thresholds = models.PaceThresholds{
		OnTrack: Clamp(numberOr(th, "onTrack", base.Thresholds.OnTrack), -maxThreshold, maxThreshold),
		AtRisk:  Clamp(numberOr(th, "atRisk", base.Thresholds.AtRisk), -maxThreshold, maxThreshold),
	}
	return out
}

func mergeForecast(base models.ForecastConfig, o map[string]any) models.ForecastConfig {
	out := base
	switch models.ForecastMethod(stringOr(o, "methodPrimary", "")) {
	case models.ForecastMomentum:
		out.MethodPrimary = models.ForecastMomentum
	case models.ForecastLinear:
		out.MethodPrimary = models.ForecastLinear
	}
	n := math.Round(numberOr(o, "momentumLastNDays", float64(base.MomentumLastNDays)))
	out.MomentumLastNDays = int(Clamp(n, minMomentumDays, maxMomentumDays))
	out.Padding = Clamp(numberOr(o, "padding", base.Padding), 0, maxPadding)
	return out
}

func mergeActivity(base models.ActivityCardConfig, o map[string]any) models.ActivityCardConfig {
	return models.ActivityCardConfig{
		ShowWeekendShare:   boolOr(o, "showWeekendShare", base.ShowWeekendShare),
		ShowEveningShare:   boolOr(o, "showEveningShare", base.ShowEveningShare),
		ShowEarliestLatest: boolOr(o, "showEarliestLatest", base.ShowEarliestLatest),
		ShowOverlaps:       boolOr(o, "showOverlaps", base.ShowOverlaps),
		ShowLongestSession: boolOr(o, "showLongestSession", base.ShowLongestSession),
		ShowLastDay:        boolOr(o, "showLastDay", base.ShowLastDay),
		ShowHint:           boolOr(o, "showHint", base.ShowHint),
	}
}

// mergeBalance resolves the balance sub-config against the final category ids
func mergeBalance(base models.BalanceConfig, o map[string]any, ids []string) models.BalanceConfig {
	out := base

	allowed := make(map[string]bool, len(ids)+1)
	for _, id := range ids {
		allowed[id] = true
	}
	allowed[models.UncategorizedID] = true
	order := []string{}
	seen := make(map[string]bool)
	for _, item := range asList(o["categories"]) {
		id, ok := item.(string)
		if !ok || !allowed[id] || seen[id] {
			continue
		}
		seen[id] = true
		order = append(order, id)
	}
	if len(order) == 0 {
		order = fallbackBalanceCategories(ids)
	}
	out.Categories = order

	out.UseCategoryMapping = boolOr(o, "useCategoryMapping", base.UseCategoryMapping)

	switch b := models.Basis(stringOr(objectOf(o, "index"), "basis", "")); b {
	case models.BasisOff, models.BasisCategory, models.BasisCalendar, models.BasisBoth:
		out.Index.Basis = b
	}

	th := objectOf(o, "thresholds")
	out.Thresholds = models.BalanceThresholds{
		NoticeAbove: Clamp(numberOr(th, "noticeAbove", base.Thresholds.NoticeAbove), 0, 1),
		NoticeBelow: Clamp(numberOr(th, "noticeBelow", base.Thresholds.NoticeBelow), 0, 1),
		WarnAbove:   Clamp(numberOr(th, "warnAbove", base.Thresholds.WarnAbove), 0, 1),
		WarnBelow:   Clamp(numberOr(th, "warnBelow", base.Thresholds.WarnBelow), 0, 1),
		WarnIndex:   Clamp(numberOr(th, "warnIndex", base.Thresholds.WarnIndex), 0, 1),
	}

	weeks := math.Round(numberOr(objectOf(o, "trend"), "lookbackWeeks", float64(base.Trend.LookbackWeeks)))
	out.Trend.LookbackWeeks = int(Clamp(weeks, minLookbackWeeks, maxLookbackWeeks))

	ui := objectOf(o, "ui")
	out.UI = models.BalanceUI{
		ShowInsights:    boolOr(ui, "showInsights", base.UI.ShowInsights),
		ShowDailyStacks: boolOr(ui, "showDailyStacks", base.UI.ShowDailyStacks),
		ShowNotes:       boolOr(ui, "showNotes", base.UI.ShowNotes),
	}
	return out
}

func fallbackBalanceCategories(ids []string) []string {
	n := min(len(ids), balanceFallbackSize)
	out := make([]string, n)
	copy(out, ids[:n])
	return out
}

func categoryIDs(cats []models.TargetCategoryConfig) []string {
	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
	}
	return ids
}

// Clone returns a deep copy of cfg
func Clone(cfg models.TargetsConfig) models.TargetsConfig {
	out := cfg
	out.Categories = make([]models.TargetCategoryConfig, len(cfg.Categories))
	for i, c := range cfg.Categories {
		c.GroupIDs = append([]int{}, c.GroupIDs...)
		out.Categories[i] = c
	}
	out.Balance.Categories = append([]string{}, cfg.Balance.Categories...)
	return out
}

// ScaleConfig returns a copy of cfg with every hour target passed through fn,
// e.g. ConvertWeekToMonth when deriving a month config from a week config.
func ScaleConfig(cfg models.TargetsConfig, fn func(float64) float64) models.TargetsConfig {
	out := Clone(cfg)
	out.TotalHours = fn(out.TotalHours)
	for i := range out.Categories {
		out.Categories[i].TargetHours = fn(out.Categories[i].TargetHours)
	}
	return out
}
