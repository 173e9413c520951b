package mediacache

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"marquee/internal/logging"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// SQLiteStore persists documents in a single SQLite table keyed by
// (collection, key).
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates the database at path and applies pending
// migrations. Use ":memory:" for a private in-memory database.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite cache path required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "mediacache"),
	}
	if err := store.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	migrations, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, migrations)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, result := range results {
		s.logger.Debug("applied cache migration",
			logging.String("migration", result.Source.Path),
			logging.Duration("duration", result.Duration))
	}
	return nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Get(ctx context.Context, collection, key string) (json.RawMessage, bool, error) {
	var value string
	err := s.retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx,
			"SELECT value FROM cache_entries WHERE collection = ? AND key = ?",
			collection, key,
		).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cache entry %s/%s: %w", collection, key, err)
	}
	return json.RawMessage(value), true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, collection, key string, value json.RawMessage) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	err := s.retryOnBusy(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, `INSERT INTO cache_entries (collection, key, value, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(collection, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			collection, key, string(value), now, now)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("write cache entry %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *SQLiteStore) Keys(ctx context.Context, collection string) ([]string, error) {
	var keys []string
	err := s.retryOnBusy(ctx, func() error {
		keys = keys[:0]
		rows, err := s.db.QueryContext(ctx,
			"SELECT key FROM cache_entries WHERE collection = ? ORDER BY key", collection)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var key string
			if err := rows.Scan(&key); err != nil {
				return err
			}
			keys = append(keys, key)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list cache keys %s: %w", collection, err)
	}
	return keys, nil
}

func (s *SQLiteStore) Count(ctx context.Context, collection string) (int, error) {
	var count int
	err := s.retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM cache_entries WHERE collection = ?", collection,
		).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("count cache entries %s: %w", collection, err)
	}
	return count, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) retryOnBusy(ctx context.Context, op func() error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return retry.Do(op,
		retry.Context(ctx),
		retry.Attempts(busyRetryAttempts),
		retry.Delay(busyRetryInitialBackoff),
		retry.MaxDelay(busyRetryMaxBackoff),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isSQLiteBusy),
		retry.LastErrorOnly(true),
	)
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code()&0xff == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
