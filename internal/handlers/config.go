// handlers/config.go - Targets config, export and import
package handlers

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

// GetConfig returns the effective config for ?range
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.config(targets.ParseRange(r.URL.Query().Get("range")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// PutConfig normalizes and stores the body as the config for ?range.
// Malformed fields fall back to defaults rather than failing the request.
func (h *Handler) PutConfig(w http.ResponseWriter, r *http.Request) {
	rng := targets.ParseRange(r.URL.Query().Get("range"))
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	cfg := targets.Normalize(body)
	if err := h.DB.SaveConfig(rng, cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Printf("[CONFIG] Saved %s config (%d categories)", rng, len(cfg.Categories))
	writeJSON(w, http.StatusOK, cfg)
}

// Export returns both range configs in a versioned envelope
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	week, err := h.config(models.RangeWeek)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	month, err := h.config(models.RangeMonth)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	env := models.ExportEnvelope{
		Version:   models.ExportVersion,
		Generated: h.Now().UTC().Format(time.RFC3339),
		ExportID:  uuid.NewString(),
		Payload:   models.ExportPayload{Week: week, Month: month},
	}
	w.Header().Set("Content-Disposition", `attachment; filename="hourdash-export.json"`)
	writeJSON(w, http.StatusOK, env)
}

// Import accepts an export envelope, a bare {week, month} payload or a single
// config (stored as the week config)
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeJSON(w, r, &body); err != nil || body == nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	payload := body
	if p, ok := body["payload"].(map[string]any); ok {
		payload = p
	}

	imported := map[models.Range]any{}
	if v, ok := payload["week"]; ok {
		imported[models.RangeWeek] = v
	}
	if v, ok := payload["month"]; ok {
		imported[models.RangeMonth] = v
	}
	if len(imported) == 0 {
		imported[models.RangeWeek] = payload
	}

	out := map[models.Range]models.TargetsConfig{}
	for rng, raw := range imported {
		cfg := targets.Normalize(raw)
		if err := h.DB.SaveConfig(rng, cfg); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out[rng] = cfg
	}
	log.Printf("[IMPORT] Imported %d config(s)", len(out))
	writeJSON(w, http.StatusOK, out)
}
