// Package core wires the catalog client, cache store, and domain services
// from configuration. The CLI and the daemon share one construction path.
package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"marquee/internal/aggregate"
	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/media"
	"marquee/internal/mediacache"
	"marquee/internal/prefs"
	"marquee/internal/search"
	"marquee/internal/tmdb"
	"marquee/internal/trailers"
)

// Collections lists every cache collection the services write.
var Collections = []string{
	media.CollectionSearchDetail,
	media.CollectionDetail,
	media.CollectionTrailers,
	media.CollectionUserLanguage,
}

// Services bundles the domain services built from one configuration.
type Services struct {
	Config     *config.Config
	Catalog    *tmdb.Client
	Store      mediacache.Store
	Aggregator *aggregate.Aggregator
	Details    *aggregate.Service
	Search     *search.Orchestrator
	Trailers   *trailers.Service
	Prefs      *prefs.Store

	logger *slog.Logger
}

// Option configures Open.
type Option func(*options)

type options struct {
	httpClient *http.Client
	store      mediacache.Store
}

// WithHTTPClient overrides the catalog HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithStore uses an already-open store instead of the configured backend.
func WithStore(store mediacache.Store) Option {
	return func(o *options) { o.store = store }
}

// Open builds the services. Close releases the store.
func Open(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Services, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout()}
	}

	catalog, err := tmdb.New(
		tmdb.Credentials{ReadAccessToken: cfg.TMDB.ReadAccessToken, APIKey: cfg.TMDB.APIKey},
		cfg.TMDB.BaseURL,
		cfg.TMDB.Language,
		tmdb.WithHTTPClient(httpClient),
		tmdb.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create catalog client: %w", err)
	}

	store := o.store
	if store == nil {
		if store, err = mediacache.Open(cfg, logger); err != nil {
			return nil, fmt.Errorf("open cache store: %w", err)
		}
	}

	cacheFor := func(collection string) *mediacache.Cache {
		return mediacache.New(store, collection,
			mediacache.WithLogger(logger),
			mediacache.WithCoalescing(cfg.Cache.Coalesce))
	}

	aggregator := aggregate.New(catalog, logger)
	svc := &Services{
		Config:     cfg,
		Catalog:    catalog,
		Store:      store,
		Aggregator: aggregator,
		Details:    aggregate.NewService(aggregator, cacheFor(media.CollectionDetail), cfg.TMDB.CastLimit),
		Search: search.New(catalog, aggregator, cacheFor(media.CollectionSearchDetail),
			search.WithLogger(logger),
			search.WithCastLimit(cfg.TMDB.CastLimit)),
		Trailers: trailers.NewService(catalog, cacheFor(media.CollectionTrailers),
			trailers.FallbackPolicy{Languages: cfg.Trailers.Fallback}, logger),
		Prefs:  prefs.New(store),
		logger: logger,
	}
	return svc, nil
}

// ResolveLanguage picks the request language: an explicit language wins,
// then the saved preference of userID, then the configured default.
func (s *Services) ResolveLanguage(ctx context.Context, language string, userID int64) string {
	if language != "" {
		return media.NormalizeLanguage(language)
	}
	if userID > 0 {
		saved, err := s.Prefs.Get(ctx, userID)
		if err != nil {
			logging.WarnWithContext(logging.WithContext(ctx, s.logger), "language preference unavailable", "prefs_read_failed",
				logging.Int64(logging.FieldUserID, userID),
				logging.Error(err),
				logging.String(logging.FieldImpact, "default language used"))
		}
		return saved
	}
	return media.NormalizeLanguage(s.Config.TMDB.Language)
}

// Counts returns the number of entries in each known collection.
func (s *Services) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(Collections))
	for _, collection := range Collections {
		n, err := s.Store.Count(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", collection, err)
		}
		counts[collection] = n
	}
	return counts, nil
}

// Close releases the store.
func (s *Services) Close() error {
	if s == nil || s.Store == nil {
		return nil
	}
	return s.Store.Close()
}
