// Package config loads and validates application configuration from
// environment variables, optionally layered over a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `yaml:"port"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `yaml:"database_url"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"] (Next.js dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `yaml:"cors_origins"`

	// DefaultTimezone is the IANA zone used to read picked dates when the
	// caller sends no X-Timezone header. Defaults to "UTC".
	DefaultTimezone string `yaml:"default_timezone"`

	// ReminderSchedule is a standard five-field cron expression, evaluated
	// in UTC, for the "starts tomorrow" job. Defaults to "0 7 * * *".
	ReminderSchedule string `yaml:"reminder_schedule"`

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// FallbackLocation is the dashboard's featured location when no active
	// or pending item has one.
	FallbackLocation string `yaml:"fallback_location"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Port:             "8080",
		LogLevel:         "info",
		CORSOrigins:      []string{"http://localhost:3000"},
		DefaultTimezone:  "UTC",
		ReminderSchedule: "0 7 * * *",
		MaxBodyBytes:     1 << 20,
	}
}

// Load builds a Config from defaults, then the YAML file named by CONFIG_FILE
// (if set), then environment variables. Environment variables always win.
// Returns an error listing any required variables that are not set, or the
// first invalid value.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	cfg.DefaultTimezone = getEnv("DEFAULT_TIMEZONE", cfg.DefaultTimezone)
	cfg.ReminderSchedule = getEnv("REMINDER_SCHEDULE", cfg.ReminderSchedule)
	cfg.FallbackLocation = getEnv("FALLBACK_LOCATION", cfg.FallbackLocation)
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	if _, err := time.LoadLocation(c.DefaultTimezone); err != nil {
		return fmt.Errorf("DEFAULT_TIMEZONE: %w", err)
	}
	if _, err := cron.ParseStandard(c.ReminderSchedule); err != nil {
		return fmt.Errorf("REMINDER_SCHEDULE: %w", err)
	}
	if c.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES: must be positive")
	}
	return nil
}

// Location returns the parsed DefaultTimezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// overlayFile unmarshals the YAML file at path on top of cfg. Keys absent
// from the file keep their current values.
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("CONFIG_FILE: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("CONFIG_FILE %s: %w", path, err)
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
