// Package config loads mosscow settings from MOSSCOW_* environment
// variables and the per-environment database file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Environment names with special handling.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Config holds process settings.
// Loaded once at startup from environment variables via Load().
type Config struct {
	// Env selects the database section and logging defaults.
	Env string
	// Addr is the HTTP listen address.
	Addr string
	// DatabaseFile is the path of the YAML database file.
	DatabaseFile string
	// PublicDir serves static files from disk instead of the embedded assets.
	PublicDir string

	// Logging overrides. Empty means the environment default.
	LogLevel  string
	LogFormat string

	// ValidateRequests checks API requests against the OpenAPI document.
	ValidateRequests bool
	ShutdownTimeout  time.Duration
}

// Load reads configuration from MOSSCOW_* environment variables.
// Invalid values log a warning and fall back to the default.
func Load() *Config {
	return &Config{
		Env:              envString("MOSSCOW_ENV", EnvDevelopment),
		Addr:             envString("MOSSCOW_ADDR", ":4567"),
		DatabaseFile:     envString("MOSSCOW_DATABASE_FILE", "config/database.yml"),
		PublicDir:        os.Getenv("MOSSCOW_PUBLIC_DIR"),
		LogLevel:         strings.ToLower(os.Getenv("MOSSCOW_LOG_LEVEL")),
		LogFormat:        strings.ToLower(os.Getenv("MOSSCOW_LOG_FORMAT")),
		ValidateRequests: envBool("MOSSCOW_VALIDATE_REQUESTS", false),
		ShutdownTimeout:  envDuration("MOSSCOW_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// IsTest reports whether the test environment is selected.
func (c *Config) IsTest() bool { return c.Env == EnvTest }

// Database loads the section of DatabaseFile selected by Env.
func (c *Config) Database() (Database, error) {
	return LoadDatabase(c.DatabaseFile, c.Env)
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v, "default": fallback}).
			Warn("invalid bool env var, using default")
		return fallback
	}
	return b
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.WithFields(logrus.Fields{"key": key, "value": v, "default": fallback}).
			Warn("invalid duration env var, using default")
		return fallback
	}
	return d
}
