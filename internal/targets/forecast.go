// targets/forecast.go - End-of-period projections
package targets

import (
	"fmt"
	"math"
	"sort"

	"github.com/noor-latif/hourdash/internal/models"
)

type ForecastInput struct {
	Config     models.TargetsConfig
	Total      models.TargetsProgress
	DailyHours map[string]float64
	Pace       models.PaceInfo
}

// ComputeForecast projects the end-of-period total two ways.
// Linear scales actual hours by the elapsed share of the period; momentum adds
// the recent daily average for every remaining day.
func ComputeForecast(in ForecastInput) models.ForecastResult {
	actual := finiteOrZero(in.Total.ActualHours)
	fc := in.Config.Forecast
	padding := Clamp(finiteOrZero(fc.Padding), 0, maxPadding)

	var ratio float64
	if in.Pace.TotalEligible > 0 {
		ratio = in.Pace.ElapsedEligible / float64(in.Pace.TotalEligible)
	}
	linear := actual
	if ratio > 0 {
		linear = actual / ratio
	}

	avg := recentAverage(in.DailyHours, fc.MomentumLastNDays)
	momentum := actual + avg*math.Ceil(math.Max(0, in.Pace.DaysLeft))

	method := fc.MethodPrimary
	if method != models.ForecastMomentum {
		method = models.ForecastLinear
	}
	primary := linear
	if method == models.ForecastMomentum {
		primary = momentum
	}

	res := models.ForecastResult{
		Linear:        Round2(linear),
		Momentum:      Round2(momentum),
		PrimaryMethod: method,
		Primary:       Round2(primary),
		Padding:       Round2(padding),
		BandLow:       Round2(math.Max(0, primary-padding)),
		BandHigh:      Round2(math.Max(0, primary+padding)),
		Low:           Round2(math.Max(0, math.Min(linear, momentum)-padding)),
		High:          Round2(math.Max(0, math.Max(linear, momentum)+padding)),
	}
	res.Text = forecastText(res)
	return res
}

// recentAverage averages the last n days that have entries, by date key.
// Missing days are not filled in.
func recentAverage(daily map[string]float64, n int) float64 {
	if n < 1 || len(daily) == 0 {
		return 0
	}
	keys := make([]string, 0, len(daily))
	for k, v := range daily {
		if IsFinite(v) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return 0
	}
	sort.Strings(keys)
	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}
	var sum float64
	for _, k := range keys {
		sum += daily[k]
	}
	return sum / float64(len(keys))
}

func forecastText(r models.ForecastResult) string {
	name := "Linear"
	if r.PrimaryMethod == models.ForecastMomentum {
		name = "Momentum"
	}
	return fmt.Sprintf("%s ±%sh ≈ %s–%s h", name,
		FormatHours(r.Padding), FormatHours(r.BandLow), FormatHours(r.BandHigh))
}
