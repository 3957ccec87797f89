// targets/math.go - Numeric helpers shared by the targets and balance engines
package targets

import (
	"math"

	"github.com/dustin/go-humanize"
)

const (
	MaxTargetHours = 10000
	// MaxDisplayPercent bounds percent values in progress records
	MaxDisplayPercent = 999
	weeksPerMonth     = 4
)

// roundNudge absorbs binary representation error so 2.345 rounds to 2.35
const roundNudge = 1e-9

// Clamp bounds v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}

// Round2 rounds half away from zero to 2 decimals. Non-finite values become 0.
func Round2(v float64) float64 {
	if !IsFinite(v) {
		return 0
	}
	return math.Round(v*100+math.Copysign(roundNudge, v)) / 100
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ClampTarget bounds an hour target to [0, 10000] with 2 decimals
func ClampTarget(h float64) float64 {
	return Round2(Clamp(h, 0, MaxTargetHours))
}

// ClampPct bounds a progress-record percent to [0, 999].
// Overshoot stays visible: 5x the target reads 500.
func ClampPct(v float64) float64 {
	return Clamp(v, 0, MaxDisplayPercent)
}

// ProgressPercent is the simple UI percent, capped at 100
func ProgressPercent(actual, target float64) float64 {
	if !(target > 0) || !IsFinite(actual) {
		return 0
	}
	return Round2(Clamp(actual/target*100, 0, 100))
}

func ConvertWeekToMonth(h float64) float64 {
	return ClampTarget(h * weeksPerMonth)
}

func ConvertMonthToWeek(h float64) float64 {
	return ClampTarget(h / weeksPerMonth)
}

// FormatHours renders hours with one decimal, dropping a trailing .0
func FormatHours(h float64) string {
	if !IsFinite(h) {
		h = 0
	}
	return humanize.FtoaWithDigits(round1(h), 1)
}

func FormatPercent(p float64) string {
	if !IsFinite(p) {
		p = 0
	}
	return humanize.FtoaWithDigits(round1(p), 1) + "%"
}

// FtoaWithDigits truncates, so round first
func round1(v float64) float64 {
	return math.Round(v*10+math.Copysign(roundNudge, v)) / 10
}
