package mediacache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"marquee/internal/config"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("cache store closed")

// Store persists {key, value} documents grouped by collection. Put is an
// upsert by key; Get reports whether the key exists.
type Store interface {
	Get(ctx context.Context, collection, key string) (json.RawMessage, bool, error)
	Put(ctx context.Context, collection, key string, value json.RawMessage) error
	Keys(ctx context.Context, collection string) ([]string, error)
	Count(ctx context.Context, collection string) (int, error)
	Close() error
}

// Open builds the store selected by cfg.Cache.Backend.
func Open(cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendSQLite, "":
		return OpenSQLite(cfg.Cache.Path, logger)
	case config.CacheBackendFile:
		return NewFileStore(afero.NewOsFs(), cfg.Cache.Dir, logger)
	case config.CacheBackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Cache.Backend)
	}
}
