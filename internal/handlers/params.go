// handlers/params.go - Request parsing helpers
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
)

const maxBodyBytes = 1 << 20

// period is the resolved range for a request
type period struct {
	Range  models.Range
	Anchor time.Time
	From   time.Time
	To     time.Time
}

// parsePeriod reads ?range=week|month&date=YYYY-MM-DD (date defaults to now)
func parsePeriod(r *http.Request, now time.Time) (period, error) {
	rng := targets.ParseRange(r.URL.Query().Get("range"))
	anchor := now
	if s := r.URL.Query().Get("date"); s != "" {
		d, ok := targets.ParseDay(s)
		if !ok {
			return period{}, fmt.Errorf("invalid date %q", s)
		}
		anchor = d
	}
	from, to := targets.PeriodBounds(rng, anchor)
	return period{Range: rng, Anchor: anchor, From: from, To: to}, nil
}

// decodeJSON reads a size-limited JSON body into dst
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// optionalDay parses an optional YYYY-MM-DD value
func optionalDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, ok := targets.ParseDay(s)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}
