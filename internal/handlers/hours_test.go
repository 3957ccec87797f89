package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noor-latif/hourdash/internal/models"
)

func TestRecordHours(t *testing.T) {
	s := newFakeStore()
	srv := newServer(t, s)

	rec := do(t, srv, http.MethodPost, "/api/hours",
		`[{"date": "2024-06-03", "calendar_id": "work", "hours": 3.5}]`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []models.HourEntry{{Date: "2024-06-03", CalendarID: "work", Hours: 3.5}}, s.recorded)

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, srv, http.MethodPost, "/api/hours", `[{"date": "2024-06-03"}]`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPost, "/api/hours", `{`).Code)
}

func TestSetGroup(t *testing.T) {
	s := newFakeStore()
	srv := newServer(t, s)

	rec := do(t, srv, http.MethodPut, "/api/groups/cal-1?group=4", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, s.groups["cal-1"])

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPut, "/api/groups/cal-1?group=10", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodPut, "/api/groups/cal-1", "").Code)
}

func TestBalance(t *testing.T) {
	s := labStore()
	s.history = []models.TrendEntry{{Categories: []models.ShareEntry{{ID: "work", Share: 75}, {ID: "lab", Share: 25}}}}

	rec := do(t, newServer(t, s), http.MethodGet, "/api/balance", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ov models.BalanceOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ov))
	assert.Equal(t, models.BasisCategory, ov.Basis)
	assert.Equal(t, 25.0, ov.TotalHours)
	require.Len(t, ov.Trend, 1)
	assert.Equal(t, "-1 wk", ov.Trend[0].Label)
	assert.Equal(t, 1.0, ov.Trend[0].Index)
}

func TestDashboardPage(t *testing.T) {
	srv := newServer(t, labStore())

	rec := do(t, srv, http.MethodGet, "/?range=month", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<title>HourDash</title>")
	assert.Contains(t, body, `hx-get="/?range=month"`, "refresh keeps the range")
	assert.Contains(t, body, `id="target-work"`)
	assert.Contains(t, body, `class="balance`)

	req := newRequest(http.MethodGet, "/?range=month")
	req.Header.Set("HX-Request", "true")
	partial := serve(srv, req)
	require.Equal(t, http.StatusOK, partial.Code)
	assert.NotContains(t, partial.Body.String(), "<title>")
	assert.Contains(t, partial.Body.String(), `data-range="month"`)
	assert.Contains(t, partial.Body.String(), `class="balance`, "refresh keeps the balance card")

	assert.Equal(t, "OK", do(t, srv, http.MethodGet, "/health", "").Body.String())
}
