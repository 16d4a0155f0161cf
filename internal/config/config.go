// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Preference backends.
const (
	BackendSQLite = "sqlite"
	BackendCookie = "cookie"
	// BackendMemory keeps preferences in process memory with no eviction.
	// For local development only; not for production.
	BackendMemory = "memory"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GinMode      string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile      string `env:"LOG_FILE"`
	StaticDir    string `env:"STATIC_DIR" envDefault:"./static"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`

	PrefsBackend    string        `env:"PREFS_BACKEND" envDefault:"sqlite"`
	DBPath          string        `env:"DB_PATH" envDefault:"portfolio.db"`
	PrefsRetention  time.Duration `env:"PREFS_RETENTION" envDefault:"8760h"`
	CleanupInterval time.Duration `env:"PREFS_CLEANUP_INTERVAL" envDefault:"24h"`
	// VisitorSalt is mixed into visitor ids before they are used as storage
	// keys. It must stay stable across restarts or stored preferences are orphaned.
	VisitorSalt string `env:"VISITOR_SALT"`
}

// Warnings lists settings that are legal but unsafe. main logs them at startup.
func (c Config) Warnings() []string {
	var warnings []string
	if c.PrefsBackend != BackendCookie && c.VisitorSalt == "" {
		warnings = append(warnings, "VISITOR_SALT is empty: visitor ids are hashed without a salt")
	}
	if c.PrefsBackend == BackendMemory {
		warnings = append(warnings, "PREFS_BACKEND=memory never evicts entries and is meant for local development")
	}
	return warnings
}

// Load parses the environment. A .env file, if present, is loaded by main
// before this runs.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.PrefsBackend {
	case BackendSQLite, BackendCookie, BackendMemory:
	default:
		return cfg, fmt.Errorf("PREFS_BACKEND must be one of %q, %q, %q, got %q",
			BackendSQLite, BackendCookie, BackendMemory, cfg.PrefsBackend)
	}
	if cfg.CleanupInterval <= 0 {
		return cfg, fmt.Errorf("PREFS_CLEANUP_INTERVAL must be positive, got %s", cfg.CleanupInterval)
	}
	return cfg, nil
}
