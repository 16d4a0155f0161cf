package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendSQLite, cfg.PrefsBackend)
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, 365*24*time.Hour, cfg.PrefsRetention)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PREFS_BACKEND", "cookie")
	t.Setenv("PREFS_RETENTION", "720h")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendCookie, cfg.PrefsBackend)
	assert.Equal(t, 720*time.Hour, cfg.PrefsRetention)
	assert.True(t, cfg.CookieSecure)
}

func TestWarnings(t *testing.T) {
	assert.Len(t, Config{PrefsBackend: BackendSQLite}.Warnings(), 1)
	assert.Contains(t, Config{PrefsBackend: BackendSQLite}.Warnings()[0], "VISITOR_SALT")
	assert.Empty(t, Config{PrefsBackend: BackendSQLite, VisitorSalt: "s"}.Warnings())
	assert.Empty(t, Config{PrefsBackend: BackendCookie}.Warnings())
	assert.Len(t, Config{PrefsBackend: BackendMemory}.Warnings(), 2)
	assert.Len(t, Config{PrefsBackend: BackendMemory, VisitorSalt: "s"}.Warnings(), 1)
}

func TestLoadErrors(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("PREFS_RETENTION", "forever")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})
	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("PREFS_BACKEND", "redis")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PREFS_BACKEND")
	})
	t.Run("zero interval", func(t *testing.T) {
		t.Setenv("PREFS_CLEANUP_INTERVAL", "0s")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PREFS_CLEANUP_INTERVAL")
	})
}
