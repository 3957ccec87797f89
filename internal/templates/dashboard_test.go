package templates_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/templates"
)

func TestTargetCards(t *testing.T) {
	s := models.TargetsSummary{
		Range: models.RangeWeek,
		From:  "2024-06-03",
		To:    "2024-06-09",
		Total: models.TargetsProgress{ID: "total", Label: "Total", ActualHours: 25, TargetHours: 40, Percent: 62.5, Status: models.StatusOnTrack, StatusLabel: "On track"},
		Categories: []models.TargetsProgress{
			{ID: "lab", Label: "<Lab>", ActualHours: 50, TargetHours: 10, Percent: 500, Status: models.StatusDone, StatusLabel: "Done"},
		},
		Forecast: models.ForecastResult{Text: "Linear ±1.5h ≈ 38.5–41.5 h"},
	}

	var buf bytes.Buffer
	require.NoError(t, templates.TargetCards(s).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `id="target-total"`)
	assert.Contains(t, html, `25 / 40 h · 62.5%`)
	assert.Contains(t, html, `&lt;Lab&gt;`)
	assert.Contains(t, html, `value="100"`, "bar uses the capped percent")
	assert.Contains(t, html, `500%`, "text keeps the overshoot")
	assert.Contains(t, html, `Linear ±1.5h ≈ 38.5–41.5 h`)
}

func TestBalanceCard(t *testing.T) {
	ov := models.BalanceOverview{
		Basis:   models.BasisCategory,
		Index:   0.55,
		Warning: true,
		Categories: []models.CategoryShare{
			{ID: "work", Label: "Work", Share: 0.95, TargetShare: 0.5, Level: models.LevelWarn},
		},
		Trend: []models.TrendPoint{{Index: 0.9, Label: "-1 wk"}},
	}
	var buf bytes.Buffer
	require.NoError(t, templates.Layout("Dash", "/?range=month&date=2024-06-20", templates.BalanceCard(ov)).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<title>Dash</title>`)
	assert.Contains(t, html, `hx-get="/?range=month&amp;date=2024-06-20"`)
	assert.Contains(t, html, `class="balance warning"`)
	assert.Contains(t, html, `Balance 0.55`)
	assert.Contains(t, html, `Work 95% (target 50%)`)
	assert.Contains(t, html, `-1 wk: 0.9`)

	buf.Reset()
	require.NoError(t, templates.BalanceCard(models.BalanceOverview{Basis: models.BasisOff}).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}
