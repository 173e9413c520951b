// Package credits reduces a credits payload to the ordered name lists used by
// aggregated detail records.
package credits

import (
	"context"
	"errors"
	"fmt"

	"marquee/internal/media"
	"marquee/internal/tmdb"
)

// DefaultCastLimit bounds the cast list when callers do not choose one.
const DefaultCastLimit = 5

const (
	jobDirector = "Director"
	jobWriter   = "Writer"
)

// ErrNoData is returned when credits are unavailable or lack cast or crew.
var ErrNoData = errors.New("credits unavailable")

// Summary holds the extracted name lists. Slices are never nil.
type Summary struct {
	Cast      []string
	Directors []string
	Writers   []string
}

// Extract takes the first limit cast names and partitions crew by job, in
// source order and without de-duplication. A negative limit is treated as 0.
func Extract(payload *tmdb.CreditsPayload, limit int) (Summary, error) {
	if payload == nil {
		return Summary{}, ErrNoData
	}
	if err := payload.Validate(); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if limit < 0 {
		limit = 0
	}

	cast := *payload.Cast
	limit = min(limit, len(cast))
	summary := Summary{
		Cast:      make([]string, 0, limit),
		Directors: []string{},
		Writers:   []string{},
	}
	for _, member := range cast[:limit] {
		summary.Cast = append(summary.Cast, *member.Name)
	}
	for _, member := range *payload.Crew {
		switch *member.Job {
		case jobDirector:
			summary.Directors = append(summary.Directors, *member.Name)
		case jobWriter:
			summary.Writers = append(summary.Writers, *member.Name)
		}
	}
	return summary, nil
}

// Fetcher is the catalog call Fetch needs.
type Fetcher interface {
	GetCredits(ctx context.Context, id int64, kind media.Kind, language string) (*tmdb.CreditsPayload, error)
}

// Fetch retrieves and extracts credits for id. Any catalog failure is
// reported as ErrNoData.
func Fetch(ctx context.Context, client Fetcher, id media.Identity, limit int) (Summary, error) {
	payload, err := client.GetCredits(ctx, id.ID, id.Kind, id.Language)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrNoData, err)
	}
	return Extract(payload, limit)
}
