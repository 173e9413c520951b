package trailers

import (
	"context"
	"log/slog"
	"strings"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/media"
	"marquee/internal/mediacache"
)

// FallbackPolicy maps a request language to a second language queried when
// the first returns no videos. Keys may be full tags ("fa-IR") or bare
// languages ("fa").
type FallbackPolicy struct {
	Languages map[string]string
}

// DefaultFallbackPolicy retries Persian lookups in English.
func DefaultFallbackPolicy() FallbackPolicy {
	return FallbackPolicy{Languages: config.DefaultTrailerFallback()}
}

// Fallback returns the configured fallback for language, if any.
func (p FallbackPolicy) Fallback(language string) (string, bool) {
	if len(p.Languages) == 0 {
		return "", false
	}
	if target, ok := p.Languages[language]; ok && target != "" {
		return target, true
	}
	base, _, _ := strings.Cut(language, "-")
	if target, ok := p.Languages[base]; ok && target != "" {
		return target, true
	}
	return "", false
}

// Service resolves cached trailer selections.
type Service struct {
	client VideoFetcher
	cache  *mediacache.Cache
	policy FallbackPolicy
	logger *slog.Logger
}

// NewService builds a Service over the trailers collection of cache.
func NewService(client VideoFetcher, cache *mediacache.Cache, policy FallbackPolicy, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		policy: policy,
		logger: logging.NewComponentLogger(logger, "trailers"),
	}
}

// Lookup returns up to limit ranked trailers for id. The cache entry holds
// every ranked video so later callers with a larger limit see the whole
// list. When the fetch for id.Language finds no videos and the policy names
// a fallback, the fallback language is queried and its result is stored
// under the original language's key.
func (s *Service) Lookup(ctx context.Context, id media.Identity, limit int) []media.Trailer {
	key := media.CacheKey(media.NamespaceTrailers, id)
	ranked, err := mediacache.GetOrCompute(ctx, s.cache, key, func(ctx context.Context) ([]media.Trailer, error) {
		ranked := fetchRanked(ctx, s.client, id)
		if len(ranked) > 0 {
			return ranked, nil
		}
		fallback, ok := s.policy.Fallback(id.Language)
		if !ok || media.NormalizeLanguage(fallback) == id.Language {
			return ranked, nil
		}
		logging.WithContext(ctx, s.logger).Debug("trailer language fallback",
			logging.String(logging.FieldEventType, "trailer_fallback"),
			logging.String(logging.FieldMediaKind, id.Kind.String()),
			logging.Int64(logging.FieldMediaID, id.ID),
			logging.String("from", id.Language),
			logging.String("to", fallback))
		return fetchRanked(ctx, s.client, id.WithLanguage(fallback)), nil
	})
	if err != nil {
		return []media.Trailer{}
	}
	return Truncate(ranked, limit)
}
