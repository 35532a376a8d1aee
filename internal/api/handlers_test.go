package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/mkezele/traincycle-api/internal/config"
)

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

// setupRouter builds a full router on a validated test configuration.
// The fixed date pins "today" so responses are deterministic.
func setupRouter(t *testing.T, fixedDate string) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Port:      8080,
		Env:       config.EnvDevelopment,
		Latitude:  45.81,
		Longitude: 15.98,
		Timezone:  "Europe/Zagreb",
		FixedDays: 42,
		HardDays:  42,
		HardWeekNames: []string{
			"Pre-Low Week", "Pre-Mid Week", "Pre-Peak Week",
			"Post-Peak Week", "Post-Mid Week", "Post-Low Week",
		},
		FixedDate: fixedDate,
		LogLevel:  "error",
		LogFormat: "text",
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate test config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	return SetupRoutes(NewHandlers(cfg, logger), logger)
}

func doRequest(t *testing.T, router http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
}

// =============================================================================
// TESTS
// =============================================================================

func TestHealthCheck(t *testing.T) {
	router := setupRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp Response
	decodeBody(t, rec, &resp)
	if !resp.Success {
		t.Errorf("Success = false, want true")
	}
}

func TestGetData_FixedDate(t *testing.T) {
	router := setupRouter(t, "2025-06-21")

	rec := doRequest(t, router, http.MethodGet, "/data")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var snap Snapshot
	decodeBody(t, rec, &snap)

	if snap.Date != "21 June 2025" {
		t.Errorf("date = %q, want %q", snap.Date, "21 June 2025")
	}
	if snap.Title != "Summer · Post-Peak Week" {
		t.Errorf("title = %q, want %q", snap.Title, "Summer · Post-Peak Week")
	}
	if snap.Bg != "bg-summer-hard" {
		t.Errorf("bg = %q, want %q", snap.Bg, "bg-summer-hard")
	}
}

// Without a fixed override, an explicit ?date= wins; a malformed one
// falls back to the current date instead of erroring.
func TestGetData_DateParam(t *testing.T) {
	router := setupRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/data?date=2024-12-21")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var snap Snapshot
	decodeBody(t, rec, &snap)
	if snap.Bg != "bg-winter-hard" {
		t.Errorf("bg = %q, want %q", snap.Bg, "bg-winter-hard")
	}

	rec = doRequest(t, router, http.MethodGet, "/data?date=not-a-date")
	if rec.Code != http.StatusOK {
		t.Errorf("malformed date status = %d, want %d (fall back to today)", rec.Code, http.StatusOK)
	}
}

// The configured fixed date takes precedence over a ?date= override.
func TestGetData_FixedDateWinsOverParam(t *testing.T) {
	router := setupRouter(t, "2025-06-21")

	rec := doRequest(t, router, http.MethodGet, "/data?date=2024-12-21")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var snap Snapshot
	decodeBody(t, rec, &snap)
	if snap.Date != "21 June 2025" {
		t.Errorf("date = %q, want fixed override %q", snap.Date, "21 June 2025")
	}
}

func TestGetDateDashboard(t *testing.T) {
	router := setupRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/date/2024-11-30")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Success bool     `json:"success"`
		Data    Snapshot `json:"data"`
	}
	decodeBody(t, rec, &resp)

	if !resp.Success {
		t.Fatalf("Success = false, want true")
	}
	if resp.Data.Title != "Winter · Pre-Low Week" {
		t.Errorf("title = %q, want %q", resp.Data.Title, "Winter · Pre-Low Week")
	}
	if resp.Data.Progress != 14.3 {
		t.Errorf("progress = %v, want 14.3", resp.Data.Progress)
	}
}

func TestGetDateDashboard_InvalidDate(t *testing.T) {
	router := setupRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/date/garbage")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var resp Response
	decodeBody(t, rec, &resp)
	if resp.Success {
		t.Errorf("Success = true, want false")
	}
	if resp.Error == nil || resp.Error.Code != "BAD_REQUEST" {
		t.Errorf("error = %+v, want BAD_REQUEST", resp.Error)
	}
}

func TestGetTodayDashboard(t *testing.T) {
	router := setupRouter(t, "2025-01-11")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/today")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Success bool     `json:"success"`
		Data    Snapshot `json:"data"`
	}
	decodeBody(t, rec, &resp)

	if resp.Data.Title != "Winter Transit 1" {
		t.Errorf("title = %q, want %q", resp.Data.Title, "Winter Transit 1")
	}
}

func TestNotFoundRoute(t *testing.T) {
	router := setupRouter(t, "")

	rec := doRequest(t, router, http.MethodGet, "/api/v1/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var resp Response
	decodeBody(t, rec, &resp)
	if resp.Error == nil || resp.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", resp.Error)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(t, "")

	rec := doRequest(t, router, http.MethodOptions, "/data")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
}
