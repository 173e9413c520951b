// Package search runs a multi-search and enriches each movie and series hit
// with its cached aggregated detail record.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"marquee/internal/aggregate"
	"marquee/internal/logging"
	"marquee/internal/media"
	"marquee/internal/mediacache"
	"marquee/internal/tmdb"
)

// Searcher is the catalog call the orchestrator needs.
type Searcher interface {
	SearchMulti(ctx context.Context, phrase, language string) (*tmdb.SearchPayload, error)
}

// Aggregator produces detail records for enrichment.
type Aggregator interface {
	Aggregate(ctx context.Context, id media.Identity, opts aggregate.Options) media.Detail
}

// Orchestrator combines search, aggregation and the search-detail cache.
type Orchestrator struct {
	catalog    Searcher
	aggregator Aggregator
	cache      *mediacache.Cache
	options    aggregate.Options
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logging.NewComponentLogger(logger, "search")
	}
}

// WithCastLimit changes the cast bound used when enriching hits.
func WithCastLimit(limit int) Option {
	return func(o *Orchestrator) {
		o.options.CastLimit = limit
	}
}

// New constructs an Orchestrator. cache should be bound to
// media.CollectionSearchDetail.
func New(catalog Searcher, aggregator Aggregator, cache *mediacache.Cache, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:    catalog,
		aggregator: aggregator,
		cache:      cache,
		options:    aggregate.DefaultOptions(),
		logger:     logging.NewComponentLogger(nil, "search"),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.options.IncludeRaw = false
	return o
}

// Search returns the enriched hits of one result page. Failures of any kind
// yield an empty list. A page without hits returns before the cache is
// consulted.
func (o *Orchestrator) Search(ctx context.Context, phrase, language string) []media.Hit {
	language = media.NormalizeLanguage(language)
	logger := logging.WithContext(ctx, o.logger).With(logging.String(logging.FieldLanguage, language))

	payload, err := o.catalog.SearchMulti(ctx, phrase, language)
	if err != nil {
		logging.WarnWithContext(logger, "search request failed", "search_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check catalog credentials and connectivity"),
			logging.String(logging.FieldImpact, "empty result returned"))
		return []media.Hit{}
	}
	hits := payload.Hits()
	if len(hits) == 0 {
		logger.Debug("search returned no hits", logging.String(logging.FieldEventType, "search_empty"))
		return []media.Hit{}
	}

	targets, err := resolveTargets(hits, language)
	if err != nil {
		logging.WarnWithContext(logger, "search page rejected", "search_malformed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "empty result returned"))
		return []media.Hit{}
	}

	enriched := make([]media.Hit, 0, len(hits))
	for i, hit := range hits {
		id, ok := targets[i]
		if !ok {
			enriched = append(enriched, hit)
			continue
		}
		merged, err := o.enrich(ctx, hit, id)
		if err != nil {
			logging.WarnWithContext(logger, "search enrichment failed", "search_enrich_failed",
				logging.Error(err),
				logging.Int64(logging.FieldMediaID, id.ID),
				logging.String(logging.FieldImpact, "empty result returned"))
			return []media.Hit{}
		}
		enriched = append(enriched, merged)
	}
	logger.Debug("search complete",
		logging.String(logging.FieldEventType, "search_complete"),
		logging.Int("hits", len(enriched)),
		logging.Int("enriched", len(targets)))
	return enriched
}

func (o *Orchestrator) enrich(ctx context.Context, hit media.Hit, id media.Identity) (media.Hit, error) {
	key := media.CacheKey(media.NamespaceSearch, id)
	detail, err := mediacache.GetOrCompute(ctx, o.cache, key, func(ctx context.Context) (media.Detail, error) {
		return o.aggregator.Aggregate(ctx, id, o.options), nil
	})
	if err != nil {
		return media.Hit{}, err
	}
	doc, err := json.Marshal(detail)
	if err != nil {
		return media.Hit{}, fmt.Errorf("encode detail %s: %w", id, err)
	}
	return hit.Enrich(doc)
}

// resolveTargets validates every hit and returns the identities of the
// movie and series hits by index.
func resolveTargets(hits []media.Hit, language string) (map[int]media.Identity, error) {
	targets := make(map[int]media.Identity, len(hits))
	for i, hit := range hits {
		mediaType, err := hit.MediaType()
		if err != nil {
			return nil, fmt.Errorf("hit %d: %w", i, err)
		}
		id, err := hit.ID()
		if err != nil {
			return nil, fmt.Errorf("hit %d: %w", i, err)
		}
		switch mediaType {
		case media.KindMovie.String():
			targets[i] = media.Identity{Kind: media.KindMovie, ID: id, Language: language}
		case media.KindTV.String():
			targets[i] = media.Identity{Kind: media.KindTV, ID: id, Language: language}
		}
	}
	return targets, nil
}
