package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health                           liveness check
//	GET /data                             raw dashboard payload (dashboard UI)
//	GET /api/v1/dashboard/today           enveloped payload for today
//	GET /api/v1/dashboard/date/{date}     enveloped payload for a date
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware())

	r.Get("/health", handlers.HealthCheck)
	r.Get("/data", handlers.GetData)

	r.Route("/api/v1/dashboard", func(r chi.Router) {
		r.Get("/today", handlers.GetTodayDashboard)
		r.Get("/date/{date}", handlers.GetDateDashboard)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})

	return r
}
