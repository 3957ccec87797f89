// Package balance computes how evenly tracked time is spread across
// categories or calendars, for one period and as a weekly trend.
package balance

import (
	"fmt"
	"math"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

const (
	minTrendLookback = 1
	maxTrendLookback = 52
	// shares summing above this are treated as percentages
	percentSumCutoff = 1.5
	renormTolerance  = 1.0001
)

// ComputeIndexForShares scores shares against the expected distribution:
// 1 - the largest single |actual - expected| deviation, in [0,1].
// Under the calendar basis the expectation is an even split across the
// present keys; otherwise it is proportional to targets. BasisOff and an
// empty key set give 0.
func ComputeIndexForShares(shares, targetHours map[string]float64, basis models.Basis) float64 {
	if basis == models.BasisOff {
		return 0
	}
	expected := expectedShares(shares, targetHours, basis)

	keys := make(map[string]struct{}, len(shares)+len(expected))
	for k := range shares {
		keys[k] = struct{}{}
	}
	for k := range expected {
		keys[k] = struct{}{}
	}
	if len(keys) == 0 {
		return 0
	}

	var worst float64
	for k := range keys {
		worst = math.Max(worst, math.Abs(finite(shares[k])-expected[k]))
	}
	return targets.Round2(targets.Clamp(1-worst, 0, 1))
}

func expectedShares(shares, targetHours map[string]float64, basis models.Basis) map[string]float64 {
	out := make(map[string]float64)
	if basis != models.BasisCalendar {
		var sum float64
		for _, t := range targetHours {
			if t > 0 && targets.IsFinite(t) {
				sum += t
			}
		}
		if sum > 0 {
			for k, t := range targetHours {
				if t > 0 && targets.IsFinite(t) {
					out[k] = t / sum
				}
			}
			return out
		}
	}
	if len(shares) == 0 {
		return out
	}
	even := 1 / float64(len(shares))
	for k := range shares {
		out[k] = even
	}
	return out
}

// NormalizeShares converts one period's raw shares to fractions.
// Upstream sources send either fractions or percentages without saying which:
// a share above 1 or a sum above 1.5 is read as percentages. Shares that still
// sum above 1 are rescaled to sum to 1.
func NormalizeShares(entries []models.ShareEntry) map[string]float64 {
	out := make(map[string]float64, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		out[e.ID] += math.Max(0, finite(e.Share))
	}
	var maxShare, sum float64
	for _, v := range out {
		maxShare = math.Max(maxShare, v)
		sum += v
	}
	if maxShare > 1 || sum > percentSumCutoff {
		for k := range out {
			out[k] /= 100
		}
		sum /= 100
	}
	if sum > renormTolerance {
		for k := range out {
			out[k] /= sum
		}
	}
	return out
}

type TrendInput struct {
	// History is ordered most recent first
	History     []models.TrendEntry
	TargetHours map[string]float64
	Basis       models.Basis
	Lookback    int
}

// BuildIndexTrend scores up to Lookback of the most recent history entries
func BuildIndexTrend(in TrendInput) []models.TrendPoint {
	lookback := int(targets.Clamp(float64(in.Lookback), minTrendLookback, maxTrendLookback))
	n := min(lookback, len(in.History))
	out := make([]models.TrendPoint, 0, n)
	for i, entry := range in.History[:n] {
		label := entry.Label
		if label == "" {
			label = fmt.Sprintf("-%d wk", i+1)
		}
		out = append(out, models.TrendPoint{
			Index: ComputeIndexForShares(NormalizeShares(entry.Categories), in.TargetHours, in.Basis),
			Label: label,
		})
	}
	return out
}

// TargetHours maps category id to its configured target
func TargetHours(cfg models.TargetsConfig) map[string]float64 {
	out := make(map[string]float64, len(cfg.Categories))
	for _, c := range cfg.Categories {
		out[c.ID] = c.TargetHours
	}
	return out
}

func finite(v float64) float64 {
	if !targets.IsFinite(v) {
		return 0
	}
	return v
}
