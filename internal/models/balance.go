// models/balance.go - Balance index configuration and results
package models

// UncategorizedID collects hours not bound to any category
const UncategorizedID = "__uncategorized__"

// Basis selects what the balance index is computed over
type Basis string

const (
	BasisOff      Basis = "off"
	BasisCategory Basis = "category"
	BasisCalendar Basis = "calendar"
	BasisBoth     Basis = "both"
)

// Level flags how far a share drifts from its target share
type Level string

const (
	LevelOK     Level = "ok"
	LevelNotice Level = "notice"
	LevelWarn   Level = "warn"
)

type BalanceConfig struct {
	Categories         []string          `json:"categories"`
	UseCategoryMapping bool              `json:"useCategoryMapping"`
	Index              BalanceIndex      `json:"index"`
	Thresholds         BalanceThresholds `json:"thresholds"`
	Trend              BalanceTrend      `json:"trend"`
	UI                 BalanceUI         `json:"ui"`
}

type BalanceIndex struct {
	Basis Basis `json:"basis"`
}

// BalanceThresholds are share deviations (fractions) and the warn-index cutoff
type BalanceThresholds struct {
	NoticeAbove float64 `json:"noticeAbove"`
	NoticeBelow float64 `json:"noticeBelow"`
	WarnAbove   float64 `json:"warnAbove"`
	WarnBelow   float64 `json:"warnBelow"`
	WarnIndex   float64 `json:"warnIndex"`
}

type BalanceTrend struct {
	LookbackWeeks int `json:"lookbackWeeks"`
}

type BalanceUI struct {
	ShowInsights    bool `json:"showInsights"`
	ShowDailyStacks bool `json:"showDailyStacks"`
	ShowNotes       bool `json:"showNotes"`
}

// TrendEntry is one historical period of raw shares (fractions or percentages)
type TrendEntry struct {
	Label      string       `json:"label,omitempty"`
	Categories []ShareEntry `json:"categories"`
}

type ShareEntry struct {
	ID    string  `json:"id"`
	Share float64 `json:"share"`
}

type TrendPoint struct {
	Index float64 `json:"index"`
	Label string  `json:"label"`
}

// CategoryShare is a category's slice of the period
type CategoryShare struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Hours       float64 `json:"hours"`
	Share       float64 `json:"share"`
	TargetShare float64 `json:"targetShare"`
	Delta       float64 `json:"delta"`
	Level       Level   `json:"level"`
}

type CalendarShare struct {
	ID    string  `json:"id"`
	Hours float64 `json:"hours"`
	Share float64 `json:"share"`
}

// BalanceOverview is the balance card payload
type BalanceOverview struct {
	Basis         Basis           `json:"basis"`
	TotalHours    float64         `json:"totalHours"`
	Categories    []CategoryShare `json:"categories"`
	Calendars     []CalendarShare `json:"calendars"`
	CategoryIndex float64         `json:"categoryIndex"`
	CalendarIndex float64         `json:"calendarIndex"`
	Index         float64         `json:"index"`
	Warning       bool            `json:"warning"`
	Trend         []TrendPoint    `json:"trend"`
}
