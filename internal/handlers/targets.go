// handlers/targets.go - Targets and balance API
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

// Summary returns the targets summary for the requested period
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r, h.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	summary, err := h.summary(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// computeRequest carries caller-supplied rows for a stateless summary
type computeRequest struct {
	Config     json.RawMessage      `json:"config"`
	Stats      *models.Stats        `json:"stats"`
	ByDay      []models.DayRow      `json:"byDay"`
	ByCal      []models.CalendarRow `json:"byCal"`
	GroupsByID map[string]int       `json:"groupsById"`
	Range      string               `json:"range"`
	From       string               `json:"from"`
	To         string               `json:"to"`
}

// Compute runs the targets engine on the request body without touching storage
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req computeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	from, err := optionalDay(req.From)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := optionalDay(req.To)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := targets.CheckPeriod(from, to); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, targets.BuildTargetsSummary(targets.SummaryInput{
		Config:     targets.Normalize(req.Config),
		Stats:      req.Stats,
		ByDay:      req.ByDay,
		ByCal:      req.ByCal,
		GroupsByID: req.GroupsByID,
		Range:      targets.ParseRange(req.Range),
		From:       from,
		To:         to,
		Now:        h.Now(),
	}))
}

// Balance returns the balance overview for the week containing ?date
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r, h.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ov, err := h.overview(p.Anchor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}
