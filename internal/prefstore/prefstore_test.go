package prefstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "prefs.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "v1", "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "v1", "theme", "dark"))
	require.NoError(t, kv.Set(ctx, "v1", "lang", "pt"))
	require.NoError(t, kv.Set(ctx, "v2", "theme", "light"))

	value, ok, err := kv.Get(ctx, "v1", "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	require.NoError(t, kv.Set(ctx, "v1", "theme", "light"))
	value, _, err = kv.Get(ctx, "v1", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	value, _, err = kv.Get(ctx, "v2", "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", value)

	_, ok, err = kv.Get(ctx, "v2", "lang")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory(t *testing.T) {
	testKV(t, NewMemory())
}

func TestSQLite(t *testing.T) {
	testKV(t, openTestSQLite(t))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "visitor", "lang", "pt"))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(ctx, path, nil)
	require.NoError(t, err)
	defer store.Close()
	value, ok, err := store.Get(ctx, "visitor", "lang")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "pt", value)
}

func TestSQLiteCleanup(t *testing.T) {
	ctx := context.Background()
	store := openTestSQLite(t)
	require.NoError(t, store.Set(ctx, "a", "theme", "dark"))
	require.NoError(t, store.Set(ctx, "b", "theme", "light"))

	rows, err := store.Cleanup(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = store.Cleanup(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	_, ok, err := store.Get(ctx, "a", "theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteRunCleanupStops(t *testing.T) {
	store := openTestSQLite(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunCleanup(ctx, time.Hour, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("RunCleanup did not return after cancel")
	}
}

func TestSQLiteClosed(t *testing.T) {
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "prefs.db"), nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get(context.Background(), "v", "theme")
	assert.Error(t, err)
	assert.Error(t, store.Set(context.Background(), "v", "theme", "dark"))
}
