package targets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

func forecastConfig(method models.ForecastMethod, days int, padding float64) models.TargetsConfig {
	cfg := targets.DefaultConfig()
	cfg.Forecast = models.ForecastConfig{MethodPrimary: method, MomentumLastNDays: days, Padding: padding}
	return cfg
}

func TestForecastMomentum(t *testing.T) {
	f := targets.ComputeForecast(targets.ForecastInput{
		Config: forecastConfig(models.ForecastMomentum, 2, 2),
		Total:  models.TargetsProgress{ActualHours: 20},
		DailyHours: map[string]float64{
			"2024-06-01": 10,
			"2024-06-03": 5,
			"2024-06-02": 3,
		},
		Pace: models.PaceInfo{TotalEligible: 10, ElapsedEligible: 4, DaysLeft: 5},
	})
	assert.Equal(t, 40.0, f.Momentum)
	assert.Equal(t, 50.0, f.Linear)
	assert.Equal(t, models.ForecastMomentum, f.PrimaryMethod)
	assert.Equal(t, 40.0, f.Primary)
	assert.Equal(t, 38.0, f.BandLow)
	assert.Equal(t, 42.0, f.BandHigh)
	assert.Equal(t, 38.0, f.Low)
	assert.Equal(t, 52.0, f.High)
	assert.Equal(t, "Momentum ±2h ≈ 38–42 h", f.Text)
}

func TestForecastLinear(t *testing.T) {
	f := targets.ComputeForecast(targets.ForecastInput{
		Config: forecastConfig(models.ForecastLinear, 3, 1.5),
		Total:  models.TargetsProgress{ActualHours: 12},
		Pace:   models.PaceInfo{TotalEligible: 5, ElapsedEligible: 2, DaysLeft: 2.5},
	})
	assert.Equal(t, 30.0, f.Linear)
	assert.Equal(t, 12.0, f.Momentum, "no daily data means no momentum")
	assert.Equal(t, 30.0, f.Primary)
	assert.Equal(t, 28.5, f.BandLow)
	assert.Equal(t, 31.5, f.BandHigh)
	assert.Equal(t, "Linear ±1.5h ≈ 28.5–31.5 h", f.Text)
}

func TestForecastNothingElapsed(t *testing.T) {
	f := targets.ComputeForecast(targets.ForecastInput{
		Config: forecastConfig(models.ForecastLinear, 2, 5),
		Total:  models.TargetsProgress{ActualHours: 3},
		Pace:   models.PaceInfo{TotalEligible: 5, DaysLeft: 5},
	})
	assert.Equal(t, 3.0, f.Linear)
	assert.Equal(t, 0.0, f.BandLow, "band is floored at zero")
	assert.Equal(t, 8.0, f.BandHigh)
}

func TestForecastRoundsUpPartialDays(t *testing.T) {
	f := targets.ComputeForecast(targets.ForecastInput{
		Config:     forecastConfig(models.ForecastMomentum, 1, 0),
		Total:      models.TargetsProgress{ActualHours: 10},
		DailyHours: map[string]float64{"2024-06-05": 2},
		Pace:       models.PaceInfo{TotalEligible: 7, ElapsedEligible: 4.5, DaysLeft: 2.5},
	})
	assert.Equal(t, 16.0, f.Momentum)
	assert.Equal(t, "Momentum ±0h ≈ 16–16 h", f.Text)
}
