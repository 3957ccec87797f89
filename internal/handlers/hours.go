// handlers/hours.go - Hour ingestion and calendar group bindings
package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/noor-latif/hourdash/internal/models"
)

// RecordHours stores a batch of (date, calendar, hours) entries
func (h *Handler) RecordHours(w http.ResponseWriter, r *http.Request) {
	var entries []models.HourEntry
	if err := decodeJSON(w, r, &entries); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := h.DB.RecordHours(entries); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"recorded": len(entries)})
}

// SetGroup binds {calendarID} to the group in ?group (0-9)
func (h *Handler) SetGroup(w http.ResponseWriter, r *http.Request) {
	calendarID := chi.URLParam(r, "calendarID")
	group, err := strconv.Atoi(r.URL.Query().Get("group"))
	if err != nil || group < 0 || group > 9 {
		http.Error(w, "Invalid group", http.StatusBadRequest)
		return
	}
	if err := h.DB.SetGroup(calendarID, group); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"calendar_id": calendarID, "group": group})
}
