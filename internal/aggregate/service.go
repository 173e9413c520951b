package aggregate

import (
	"context"

	"marquee/internal/media"
	"marquee/internal/mediacache"
)

// Service serves full detail records, raw payload included, through the
// media_detail cache collection.
type Service struct {
	aggregator *Aggregator
	cache      *mediacache.Cache
	castLimit  int
}

// NewService wires an Aggregator to a cache over media.CollectionDetail.
func NewService(aggregator *Aggregator, cache *mediacache.Cache, castLimit int) *Service {
	return &Service{aggregator: aggregator, cache: cache, castLimit: castLimit}
}

// Detail returns the cached record for id, aggregating it on a miss. Empty
// records are cached like any other.
func (s *Service) Detail(ctx context.Context, id media.Identity) media.Detail {
	detail, err := mediacache.GetOrCompute(ctx, s.cache, media.DetailKey(id), func(ctx context.Context) (media.Detail, error) {
		return s.aggregator.Aggregate(ctx, id, Options{CastLimit: s.castLimit, IncludeRaw: true}), nil
	})
	if err != nil {
		return media.Detail{}
	}
	return detail
}
