// Package trailers ranks a title's videos into a short list of playable
// trailer links and caches the selection per title and language.
package trailers

import (
	"context"

	"github.com/samber/mo"

	"marquee/internal/media"
	"marquee/internal/tmdb"
)

// DefaultLimit is the number of videos returned when callers do not choose one.
const DefaultLimit = 1

const (
	typeTrailer   = "Trailer"
	supportedSite = "YouTube"
	watchURL      = "https://www.youtube.com/watch?v="
)

// Select orders videos as official trailers, then non-official trailers,
// then every other video type, keeping arrival order inside each group, and
// returns at most limit entries. The result is never nil.
func Select(payload *tmdb.VideosPayload, limit int) []media.Trailer {
	return Truncate(rank(payload), limit)
}

// Truncate returns the first limit entries of ranked. A non-positive limit
// yields an empty list; the result is never nil.
func Truncate(ranked []media.Trailer, limit int) []media.Trailer {
	if limit <= 0 || len(ranked) == 0 {
		return []media.Trailer{}
	}
	return ranked[:min(limit, len(ranked))]
}

func rank(payload *tmdb.VideosPayload) []media.Trailer {
	if payload == nil || payload.Results == nil {
		return []media.Trailer{}
	}

	var official, unofficial, other []media.Trailer
	for _, video := range *payload.Results {
		candidate := toTrailer(video)
		switch {
		case candidate.Type == typeTrailer && candidate.Official:
			official = append(official, candidate)
		case candidate.Type == typeTrailer:
			unofficial = append(unofficial, candidate)
		default:
			other = append(other, candidate)
		}
	}

	ranked := make([]media.Trailer, 0, len(official)+len(unofficial)+len(other))
	ranked = append(ranked, official...)
	ranked = append(ranked, unofficial...)
	ranked = append(ranked, other...)
	return ranked
}

func toTrailer(video tmdb.Video) media.Trailer {
	trailer := media.Trailer{URL: mo.None[string]()}
	if video.Name != nil {
		trailer.Name = *video.Name
	}
	if video.Type != nil {
		trailer.Type = *video.Type
	}
	if video.Official != nil {
		trailer.Official = *video.Official
	}
	if video.Site == supportedSite && video.Key != "" {
		trailer.URL = mo.Some(watchURL + video.Key)
	}
	return trailer
}

// VideoFetcher is the catalog call Fetch needs.
type VideoFetcher interface {
	GetVideos(ctx context.Context, id int64, kind media.Kind, language string) (*tmdb.VideosPayload, error)
}

// Fetch retrieves and ranks videos for id. A catalog failure yields an
// empty list.
func Fetch(ctx context.Context, client VideoFetcher, id media.Identity, limit int) []media.Trailer {
	return Truncate(fetchRanked(ctx, client, id), limit)
}

// fetchRanked returns every video of id in rank order.
func fetchRanked(ctx context.Context, client VideoFetcher, id media.Identity) []media.Trailer {
	payload, err := client.GetVideos(ctx, id.ID, id.Kind, id.Language)
	if err != nil {
		return []media.Trailer{}
	}
	return rank(payload)
}
