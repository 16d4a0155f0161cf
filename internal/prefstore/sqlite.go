package prefstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const createPreferencesTable = `
CREATE TABLE IF NOT EXISTS preferences (
	visitor TEXT NOT NULL,    -- salted hash of the visitor cookie, never the raw id
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (visitor, key)
)`

// SQLite is a KV backed by a SQLite database file.
type SQLite struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string, logger *zap.Logger) (*SQLite, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}
	// One writer at a time; sqlite serializes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createPreferencesTable); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create preferences table")
	}
	logger.Info("preference store ready", zap.String("path", path))
	return &SQLite{db: db, logger: logger}, nil
}

func (s *SQLite) Get(ctx context.Context, visitor, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor = ? AND key = ?`, visitor, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get preference %s", key)
	}
	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, visitor, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (visitor, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, visitor, key, value, time.Now().UTC())
	if err != nil {
		return errors.Wrapf(err, "set preference %s", key)
	}
	return nil
}

// Cleanup removes preferences not written within retention and returns how
// many rows were deleted.
func (s *SQLite) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-retention)
	result, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "cleanup preferences")
	}
	rows, _ := result.RowsAffected()
	if rows > 0 {
		s.logger.Info("removed stale preferences", zap.Int64("rows", rows), zap.Duration("retention", retention))
	}
	return rows, nil
}

// RunCleanup calls Cleanup immediately and then every interval until ctx is done.
func (s *SQLite) RunCleanup(ctx context.Context, retention, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := s.Cleanup(ctx, retention); err != nil {
			s.logger.Warn("preference cleanup failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
