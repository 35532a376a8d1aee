// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. The location, timezone and
// day-count constants are fixed at process scope; every request computes
// from the same immutable values.
type Config struct {
	// Server settings
	Port int    // HTTP port to listen on
	Env  string // development, staging, production

	// Location (defaults are Zagreb)
	Latitude  float64 // degrees north
	Longitude float64 // degrees, east positive
	Timezone  string  // IANA zone name

	// Cycle constants
	FixedDays     int      // length of non-variable transit phases
	HardDays      int      // length of hard phases
	HardWeekNames []string // one display name per week of a hard phase

	// FixedDate pins the dashboard to one date for deterministic
	// testing. Empty means use the real clock.
	FixedDate string // YYYY-MM-DD

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text

	location  *time.Location
	fixedDate time.Time
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// defaultHardWeekNames names the six weeks of a hard phase, from ramp-up
// through the solstice peak and back down.
var defaultHardWeekNames = []string{
	"Pre-Low Week",
	"Pre-Mid Week",
	"Pre-Peak Week",
	"Post-Peak Week",
	"Post-Mid Week",
	"Post-Low Week",
}

// Load reads configuration from environment variables.
// In development, it first loads from .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	// This is a no-op in production where env vars are set directly
	_ = godotenv.Load()

	cfg := &Config{}

	// Server settings
	cfg.Port = getEnvInt("PORT", 8080)
	cfg.Env = getEnv("ENV", EnvDevelopment)

	// Location
	cfg.Latitude = getEnvFloat("LATITUDE", 45.81)
	cfg.Longitude = getEnvFloat("LONGITUDE", 15.98)
	cfg.Timezone = getEnv("TIMEZONE", "Europe/Zagreb")

	// Cycle constants
	cfg.FixedDays = getEnvInt("FIXED_DAYS", 42)
	cfg.HardDays = getEnvInt("HARD_DAYS", 42)
	cfg.HardWeekNames = getEnvList("HARD_WEEK_NAMES", defaultHardWeekNames)

	// Test override
	cfg.FixedDate = getEnv("FIXED_DATE", "")

	// Logging
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "text")

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present and valid.
// It also resolves the timezone and fixed-date override, so Location and
// OverrideDate are only usable after a successful Validate.
func (c *Config) Validate() error {
	var errs []error

	// Validate port range
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	// Validate environment
	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	// The day-length formula divides by cos(latitude); the poles are
	// out anyway since the dashboard assumes sunrise and sunset exist.
	if c.Latitude <= -90 || c.Latitude >= 90 {
		errs = append(errs, fmt.Errorf("LATITUDE must be strictly between -90 and 90, got %v", c.Latitude))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		errs = append(errs, fmt.Errorf("LONGITUDE must be between -180 and 180, got %v", c.Longitude))
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q is not a valid IANA zone: %w", c.Timezone, err))
	} else {
		c.location = loc
	}

	if c.FixedDays < 1 {
		errs = append(errs, fmt.Errorf("FIXED_DAYS must be positive, got %d", c.FixedDays))
	}
	if c.HardDays < 1 || c.HardDays%7 != 0 {
		errs = append(errs, fmt.Errorf("HARD_DAYS must be a positive multiple of 7, got %d", c.HardDays))
	} else if len(c.HardWeekNames) != c.HardDays/7 {
		errs = append(errs, fmt.Errorf("HARD_WEEK_NAMES must list %d names (one per week of a hard phase), got %d",
			c.HardDays/7, len(c.HardWeekNames)))
	}

	if c.FixedDate != "" {
		d, err := time.Parse("2006-01-02", c.FixedDate)
		if err != nil {
			errs = append(errs, fmt.Errorf("FIXED_DATE must be YYYY-MM-DD, got %q", c.FixedDate))
		} else {
			c.fixedDate = d
		}
	}

	// Validate log level
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.LogLevel))
	}

	// Validate log format
	switch c.LogFormat {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Location returns the resolved timezone. Only valid after Validate.
func (c *Config) Location() *time.Location {
	return c.location
}

// OverrideDate returns the fixed test date and whether one is configured.
// Only valid after Validate.
func (c *Config) OverrideDate() (time.Time, bool) {
	return c.fixedDate, !c.fixedDate.IsZero()
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// getEnv reads an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as a float with a default fallback.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

// getEnvList reads a comma-separated environment variable with a default fallback.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
