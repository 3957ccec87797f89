// models/targets.go - Targets configuration and progress records
package models

// PaceMode controls how "today" is credited when pacing a target
type PaceMode string

const (
	PaceDaysOnly  PaceMode = "days_only"
	PaceTimeAware PaceMode = "time_aware"
)

// ForecastMethod selects the primary forecast projection
type ForecastMethod string

const (
	ForecastLinear   ForecastMethod = "linear"
	ForecastMomentum ForecastMethod = "momentum"
)

// Status classifies progress against pace
type Status string

const (
	StatusNone    Status = "none"
	StatusOnTrack Status = "on_track"
	StatusAtRisk  Status = "at_risk"
	StatusBehind  Status = "behind"
	StatusDone    Status = "done"
)

// Range is the period a targets config applies to
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// TargetsConfig is the canonical, fully-populated configuration
type TargetsConfig struct {
	TotalHours             float64                `json:"totalHours"`
	Categories             []TargetCategoryConfig `json:"categories"`
	Pace                   PaceConfig             `json:"pace"`
	Forecast               ForecastConfig         `json:"forecast"`
	ActivityCard           ActivityCardConfig     `json:"activityCard"`
	Balance                BalanceConfig          `json:"balance"`
	IncludeZeroDaysInStats bool                   `json:"includeZeroDaysInStats"`
}

// TargetCategoryConfig binds calendars (via group ids) to an hour target
type TargetCategoryConfig struct {
	ID             string   `json:"id"`
	Label          string   `json:"label"`
	TargetHours    float64  `json:"targetHours"`
	IncludeWeekend bool     `json:"includeWeekend"`
	PaceMode       PaceMode `json:"paceMode"`
	Color          string   `json:"color,omitempty"`
	GroupIDs       []int    `json:"groupIds"`
}

type PaceConfig struct {
	IncludeWeekendTotal bool           `json:"includeWeekendTotal"`
	Mode                PaceMode       `json:"mode"`
	Thresholds          PaceThresholds `json:"thresholds"`
}

// PaceThresholds are gap cutoffs in percentage points (usually negative)
type PaceThresholds struct {
	OnTrack float64 `json:"onTrack"`
	AtRisk  float64 `json:"atRisk"`
}

type ForecastConfig struct {
	MethodPrimary     ForecastMethod `json:"methodPrimary"`
	MomentumLastNDays int            `json:"momentumLastNDays"`
	Padding           float64        `json:"padding"`
}

// ActivityCardConfig holds display toggles for the activity card
type ActivityCardConfig struct {
	ShowWeekendShare   bool `json:"showWeekendShare"`
	ShowEveningShare   bool `json:"showEveningShare"`
	ShowEarliestLatest bool `json:"showEarliestLatest"`
	ShowOverlaps       bool `json:"showOverlaps"`
	ShowLongestSession bool `json:"showLongestSession"`
	ShowLastDay        bool `json:"showLastDay"`
	ShowHint           bool `json:"showHint"`
}

// PaceInfo is the eligible/elapsed day accounting for one target
type PaceInfo struct {
	TotalEligible   int     `json:"totalEligible"`
	ElapsedEligible float64 `json:"elapsedEligible"`
	DaysLeft        float64 `json:"daysLeft"`
	CalendarPercent float64 `json:"calendarPercent"`
}

// TargetsProgress is one progress record (a category or the total)
type TargetsProgress struct {
	ID              string   `json:"id"`
	Label           string   `json:"label"`
	ActualHours     float64  `json:"actualHours"`
	TargetHours     float64  `json:"targetHours"`
	Percent         float64  `json:"percent"`
	DeltaHours      float64  `json:"deltaHours"`
	RemainingHours  float64  `json:"remainingHours"`
	NeedPerDay      float64  `json:"needPerDay"`
	DaysLeft        float64  `json:"daysLeft"`
	CalendarPercent float64  `json:"calendarPercent"`
	Gap             float64  `json:"gap"`
	Status          Status   `json:"status"`
	StatusLabel     string   `json:"statusLabel"`
	IncludeWeekend  bool     `json:"includeWeekend"`
	PaceMode        PaceMode `json:"paceMode"`
}

type ForecastResult struct {
	Linear        float64        `json:"linear"`
	Momentum      float64        `json:"momentum"`
	PrimaryMethod ForecastMethod `json:"primaryMethod"`
	Primary       float64        `json:"primary"`
	Padding       float64        `json:"padding"`
	BandLow       float64        `json:"bandLow"`
	BandHigh      float64        `json:"bandHigh"`
	Low           float64        `json:"low"`
	High          float64        `json:"high"`
	Text          string         `json:"text"`
}

// TargetsSummary aggregates total, per-category progress and the forecast
type TargetsSummary struct {
	Range      Range             `json:"range"`
	From       string            `json:"from"`
	To         string            `json:"to"`
	Total      TargetsProgress   `json:"total"`
	Categories []TargetsProgress `json:"categories"`
	Forecast   ForecastResult    `json:"forecast"`
}

// Stats carries precomputed period aggregates
type Stats struct {
	TotalHours float64 `json:"total_hours"`
}
