package mediacache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"marquee/internal/logging"
)

// Cache binds a Store collection to GetOrCompute.
type Cache struct {
	store      Store
	collection string
	logger     *slog.Logger
	flights    *singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger attaches a logger for hit/miss and store failure diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logging.NewComponentLogger(logger, "mediacache")
	}
}

// WithCoalescing makes concurrent misses for the same key share one
// computation.
func WithCoalescing(enabled bool) Option {
	return func(c *Cache) {
		if enabled {
			c.flights = &singleflight.Group{}
		} else {
			c.flights = nil
		}
	}
}

// New returns a Cache over one collection of store.
func New(store Store, collection string, opts ...Option) *Cache {
	c := &Cache{
		store:      store,
		collection: collection,
		logger:     logging.NewComponentLogger(nil, "mediacache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collection returns the store collection backing c.
func (c *Cache) Collection() string { return c.collection }

// Store returns the backing store.
func (c *Cache) Store() Store { return c.store }

// GetOrCompute returns the value stored under key, or computes, stores, and
// returns it. A store read failure is treated as a miss and a store write
// failure is logged; neither is returned. Errors from compute are returned
// and nothing is stored.
func GetOrCompute[T any](ctx context.Context, c *Cache, key string, compute func(context.Context) (T, error)) (T, error) {
	if value, ok := lookup[T](ctx, c, key); ok {
		return value, nil
	}
	if c.flights == nil {
		return computeAndStore(ctx, c, key, compute)
	}

	shared, err, _ := c.flights.Do(key, func() (any, error) {
		if value, ok := lookup[T](ctx, c, key); ok {
			return value, nil
		}
		return computeAndStore(ctx, c, key, compute)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return shared.(T), nil
}

func lookup[T any](ctx context.Context, c *Cache, key string) (T, bool) {
	var value T
	logger := logging.WithContext(ctx, c.logger)
	raw, ok, err := c.store.Get(ctx, c.collection, key)
	if err != nil {
		logging.WarnWithContext(logger, "cache read failed", "cache_read_failed",
			logging.String(logging.FieldCollection, c.collection),
			logging.String(logging.FieldCacheKey, key),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the cache store is readable"),
			logging.String(logging.FieldImpact, "value will be recomputed from the catalog"))
		return value, false
	}
	if !ok {
		logger.Debug("cache miss",
			logging.String(logging.FieldEventType, "cache_miss"),
			logging.String(logging.FieldCollection, c.collection),
			logging.String(logging.FieldCacheKey, key))
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		logging.WarnWithContext(logger, "cache entry undecodable", "cache_decode_failed",
			logging.String(logging.FieldCollection, c.collection),
			logging.String(logging.FieldCacheKey, key),
			logging.Error(err),
			logging.String(logging.FieldImpact, "entry will be recomputed and overwritten"))
		var zero T
		return zero, false
	}
	logger.Debug("cache hit",
		logging.String(logging.FieldEventType, "cache_hit"),
		logging.String(logging.FieldCollection, c.collection),
		logging.String(logging.FieldCacheKey, key))
	return value, true
}

func computeAndStore[T any](ctx context.Context, c *Cache, key string, compute func(context.Context) (T, error)) (T, error) {
	value, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("compute %s/%s: %w", c.collection, key, err)
	}
	logger := logging.WithContext(ctx, c.logger)
	raw, err := json.Marshal(value)
	if err != nil {
		logging.WarnWithContext(logger, "cache value not serializable", "cache_encode_failed",
			logging.String(logging.FieldCacheKey, key),
			logging.Error(err),
			logging.String(logging.FieldImpact, "value served without caching"))
		return value, nil
	}
	if err := c.store.Put(ctx, c.collection, key, raw); err != nil {
		logging.WarnWithContext(logger, "cache write failed", "cache_write_failed",
			logging.String(logging.FieldCollection, c.collection),
			logging.String(logging.FieldCacheKey, key),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check disk space and cache store permissions"),
			logging.String(logging.FieldImpact, "value served without caching"))
		return value, nil
	}
	logger.Debug("cache stored",
		logging.String(logging.FieldEventType, "cache_store"),
		logging.String(logging.FieldCollection, c.collection),
		logging.String(logging.FieldCacheKey, key))
	return value, nil
}
