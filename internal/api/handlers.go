package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkezele/traincycle-api/internal/config"
	"github.com/mkezele/traincycle-api/internal/cycle"
	"github.com/mkezele/traincycle-api/internal/logger"
	"github.com/mkezele/traincycle-api/internal/solar"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	presenter *Presenter
	cfg       *config.Config
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(cfg *config.Config, log *slog.Logger) *Handlers {
	rules := cycle.Rules{FixedDays: cfg.FixedDays, HardDays: cfg.HardDays}
	sun := solar.New(cfg.Latitude, cfg.Longitude, cfg.Location())

	return &Handlers{
		presenter: NewPresenter(rules, sun, cfg.HardWeekNames),
		cfg:       cfg,
		logger:    log,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetData handles GET /data?date=YYYY-MM-DD. The payload is written raw
// (no envelope) because the dashboard UI consumes it directly. A
// malformed date override falls back to the current date, and a
// configured fixed date takes precedence over the query parameter.
func (h *Handlers) GetData(w http.ResponseWriter, r *http.Request) {
	today := h.todayDate()

	if _, ok := h.cfg.OverrideDate(); !ok {
		if override := r.URL.Query().Get("date"); override != "" {
			if d, err := parseDate(override); err == nil {
				today = d
			}
		}
	}

	snap, err := h.presenter.Snapshot(today)
	if err != nil {
		logger.Error(r.Context(), "failed to build snapshot", err,
			slog.String("date", today.Format("2006-01-02")))
		WriteInternalError(w, "Failed to compute dashboard data")
		return
	}

	WriteJSON(w, http.StatusOK, snap)
}

// GetTodayDashboard handles GET /api/v1/dashboard/today
func (h *Handlers) GetTodayDashboard(w http.ResponseWriter, r *http.Request) {
	today := h.todayDate()

	snap, err := h.presenter.Snapshot(today)
	if err != nil {
		logger.Error(r.Context(), "failed to build snapshot", err,
			slog.String("date", today.Format("2006-01-02")))
		WriteInternalError(w, "Failed to compute dashboard data")
		return
	}

	WriteSuccess(w, snap)
}

// GetDateDashboard handles GET /api/v1/dashboard/date/{YYYY-MM-DD}
func (h *Handlers) GetDateDashboard(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := parseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	snap, err := h.presenter.Snapshot(date)
	if err != nil {
		logger.Error(r.Context(), "failed to build snapshot", err,
			slog.String("date", dateStr))
		WriteInternalError(w, "Failed to compute dashboard data")
		return
	}

	WriteSuccess(w, snap)
}

// todayDate resolves "today": the configured fixed override if set,
// otherwise the current calendar date in the configured timezone.
func (h *Handlers) todayDate() time.Time {
	if d, ok := h.cfg.OverrideDate(); ok {
		return cycle.Day(d)
	}
	return cycle.Day(time.Now().In(h.cfg.Location()))
}

// parseDate parses a YYYY-MM-DD string into a UTC-midnight date.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return cycle.Day(d), nil
}
