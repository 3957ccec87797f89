package targets_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

func TestClampTarget(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-5, 0},
		{20000, 10000},
		{2.345, 2.35},
		{12, 12},
		{math.NaN(), 0},
		{math.Inf(1), 10000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, targets.ClampTarget(tt.in), "ClampTarget(%v)", tt.in)
	}
}

func TestWeekMonthConversion(t *testing.T) {
	assert.Equal(t, 40.0, targets.ConvertWeekToMonth(10))
	assert.Equal(t, 15.0, targets.ConvertMonthToWeek(60))
	assert.Equal(t, 10000.0, targets.ConvertWeekToMonth(5000))
	assert.Equal(t, 0.0, targets.ConvertMonthToWeek(-8))
}

// The two percent helpers have different upper bounds on purpose.
func TestPercentBounds(t *testing.T) {
	assert.Equal(t, 100.0, targets.ProgressPercent(50, 10), "UI percent caps at 100")
	assert.Equal(t, 500.0, targets.ClampPct(500), "record percent keeps overshoot")
	assert.Equal(t, 999.0, targets.ClampPct(5000))
	assert.Equal(t, 0.0, targets.ClampPct(-3))
	assert.Equal(t, 0.0, targets.ProgressPercent(5, 0))

	p := targets.MakeProgress(targets.ProgressInput{ID: "x", Actual: 50, Target: 10})
	assert.Equal(t, 500.0, p.Percent)
	assert.Equal(t, models.StatusDone, p.Status)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "38", targets.FormatHours(38))
	assert.Equal(t, "2.5", targets.FormatHours(2.5))
	assert.Equal(t, "1.3", targets.FormatHours(1.26))
	assert.Equal(t, "0", targets.FormatHours(math.NaN()))
	assert.Equal(t, "37.5%", targets.FormatPercent(37.5))
	assert.Equal(t, "40%", targets.FormatPercent(40))
}
