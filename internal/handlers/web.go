// handlers/web.go - HTTP handlers and routes
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/noor-latif/hourdash/internal/balance"
	"github.com/noor-latif/hourdash/internal/models"
	"github.com/noor-latif/hourdash/internal/targets"
	"github.com/noor-latif/hourdash/internal/templates"
)

// Store defines the interface for data operations (enables mocking)
type Store interface {
	GetConfig(r models.Range) (*models.TargetsConfig, error)
	SaveConfig(r models.Range, cfg models.TargetsConfig) error
	SetGroup(calendarID string, groupID int) error
	Groups() (map[string]int, error)
	RecordHours(entries []models.HourEntry) error
	DayTotals(from, to time.Time) ([]models.DayRow, error)
	CalendarTotals(from, to time.Time) ([]models.CalendarRow, error)
	WeeklyHistory(cfg models.TargetsConfig, anchor time.Time, weeks int) ([]models.TrendEntry, error)
}

// Handler holds dependencies
type Handler struct {
	DB    Store
	Title string
	Now   func() time.Time
}

// New creates a new Handler
func New(db Store, title string) *Handler {
	return &Handler{DB: db, Title: title, Now: time.Now}
}

// Routes wires every endpoint onto a chi router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Static files
	fs := http.FileServer(http.Dir("web/static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	r.Get("/", h.Dashboard)
	r.Get("/dashboard", h.Dashboard)

	r.Route("/api", func(r chi.Router) {
		r.Get("/targets/summary", h.Summary)
		r.Post("/targets/compute", h.Compute)
		r.Get("/balance", h.Balance)

		r.Get("/config", h.GetConfig)
		r.Put("/config", h.PutConfig)
		r.Get("/config/export", h.Export)
		r.Post("/config/import", h.Import)

		r.Post("/hours", h.RecordHours)
		r.Put("/groups/{calendarID}", h.SetGroup)
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	return r
}

// Dashboard renders the targets and balance cards
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
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

	overview, err := h.overview(p.Anchor)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body := templates.Dashboard(summary, overview)
	if r.Header.Get("HX-Request") == "true" {
		body.Render(r.Context(), w)
		return
	}
	templates.Layout(h.Title, r.URL.RequestURI(), body).Render(r.Context(), w)
}

// summary loads the period's rows and runs the targets engine
func (h *Handler) summary(p period) (models.TargetsSummary, error) {
	cfg, err := h.config(p.Range)
	if err != nil {
		return models.TargetsSummary{}, err
	}
	byDay, err := h.DB.DayTotals(p.From, p.To)
	if err != nil {
		return models.TargetsSummary{}, err
	}
	byCal, err := h.DB.CalendarTotals(p.From, p.To)
	if err != nil {
		return models.TargetsSummary{}, err
	}
	groups, err := h.DB.Groups()
	if err != nil {
		return models.TargetsSummary{}, err
	}

	return targets.BuildTargetsSummary(targets.SummaryInput{
		Config:     cfg,
		ByDay:      byDay,
		ByCal:      byCal,
		GroupsByID: groups,
		Range:      p.Range,
		From:       p.From,
		To:         p.To,
		Now:        h.Now(),
	}), nil
}

// overview builds the balance card for anchor's week
func (h *Handler) overview(anchor time.Time) (models.BalanceOverview, error) {
	cfg, err := h.config(models.RangeWeek)
	if err != nil {
		return models.BalanceOverview{}, err
	}
	from, to := targets.PeriodBounds(models.RangeWeek, anchor)
	byCal, err := h.DB.CalendarTotals(from, to)
	if err != nil {
		return models.BalanceOverview{}, err
	}
	groups, err := h.DB.Groups()
	if err != nil {
		return models.BalanceOverview{}, err
	}
	history, err := h.DB.WeeklyHistory(cfg, anchor, cfg.Balance.Trend.LookbackWeeks)
	if err != nil {
		return models.BalanceOverview{}, err
	}

	return balance.BuildOverview(balance.OverviewInput{
		Config:     cfg,
		ByCal:      byCal,
		GroupsByID: groups,
		History:    history,
	}), nil
}

// config returns the stored config for a range. A missing month config is
// derived from the week config; with nothing stored the defaults apply.
func (h *Handler) config(r models.Range) (models.TargetsConfig, error) {
	cfg, err := h.DB.GetConfig(r)
	if err != nil {
		return models.TargetsConfig{}, err
	}
	if cfg != nil {
		return *cfg, nil
	}
	if r == models.RangeMonth {
		week, err := h.config(models.RangeWeek)
		if err != nil {
			return models.TargetsConfig{}, err
		}
		return targets.ScaleConfig(week, targets.ConvertWeekToMonth), nil
	}
	return targets.DefaultConfig(), nil
}
