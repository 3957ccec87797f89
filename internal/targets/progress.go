// targets/progress.go - Progress records and status classification
package targets

import (
	"math"

	"github.com/noor-latif/hourdash/internal/models"
)

// TotalID identifies the total progress record
const TotalID = "total"

var statusLabels = map[models.Status]string{
	models.StatusNone:    "No target",
	models.StatusOnTrack: "On track",
	models.StatusAtRisk:  "At risk",
	models.StatusBehind:  "Behind",
	models.StatusDone:    "Done",
}

// StatusLabel returns the display label for a status
func StatusLabel(s models.Status) string {
	return statusLabels[s]
}

type ProgressInput struct {
	ID             string
	Label          string
	Actual         float64
	Target         float64
	Pace           models.PaceInfo
	Thresholds     models.PaceThresholds
	IncludeWeekend bool
	PaceMode       models.PaceMode
}

// MakeProgress combines actual hours, target and pace into a progress record
func MakeProgress(in ProgressInput) models.TargetsProgress {
	actual := finiteOrZero(in.Actual)
	target := finiteOrZero(in.Target)

	var percent float64
	if target > 0 {
		percent = Round2(ClampPct(actual / target * 100))
	}
	gap := Round2(percent - in.Pace.CalendarPercent)
	remaining := math.Max(0, target-actual)

	var needPerDay float64
	if in.Pace.DaysLeft > 0 {
		needPerDay = remaining / in.Pace.DaysLeft
	}

	status := classify(target, percent, gap, in.Thresholds)
	return models.TargetsProgress{
		ID:              in.ID,
		Label:           in.Label,
		ActualHours:     Round2(actual),
		TargetHours:     Round2(target),
		Percent:         percent,
		DeltaHours:      Round2(actual - target),
		RemainingHours:  Round2(remaining),
		NeedPerDay:      Round2(needPerDay),
		DaysLeft:        in.Pace.DaysLeft,
		CalendarPercent: in.Pace.CalendarPercent,
		Gap:             gap,
		Status:          status,
		StatusLabel:     StatusLabel(status),
		IncludeWeekend:  in.IncludeWeekend,
		PaceMode:        in.PaceMode,
	}
}

// classify: thresholds are how far behind the calendar (in points) a target
// may fall before it moves to the next bucket
func classify(target, percent, gap float64, th models.PaceThresholds) models.Status {
	switch {
	case target <= 0:
		return models.StatusNone
	case percent >= 100:
		return models.StatusDone
	case gap >= th.OnTrack:
		return models.StatusOnTrack
	case gap >= th.AtRisk:
		return models.StatusAtRisk
	default:
		return models.StatusBehind
	}
}

func finiteOrZero(v float64) float64 {
	if !IsFinite(v) {
		return 0
	}
	return v
}
