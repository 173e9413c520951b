// Package aggregate merges a title's detail and credits payloads into one
// normalized media.Detail record.
//
// Every upstream failure collapses into the empty record. Callers never see
// an error from Aggregate; the reason is logged instead.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"marquee/internal/credits"
	"marquee/internal/logging"
	"marquee/internal/media"
	"marquee/internal/tmdb"
)

const yearLength = 4

// ErrShortDate is reported when a release or air date has fewer than four characters.
var ErrShortDate = errors.New("date too short for year")

// Catalog is the subset of the catalog client the aggregator calls.
type Catalog interface {
	GetDetail(ctx context.Context, id int64, kind media.Kind, language string) (*tmdb.DetailPayload, error)
	credits.Fetcher
}

// Options tune one aggregation.
type Options struct {
	CastLimit  int
	IncludeRaw bool
}

// DefaultOptions returns the options used by search enrichment.
func DefaultOptions() Options {
	return Options{CastLimit: credits.DefaultCastLimit}
}

// Aggregator fans out to the catalog and assembles detail records.
type Aggregator struct {
	catalog Catalog
	logger  *slog.Logger
}

// New constructs an Aggregator.
func New(catalog Catalog, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		catalog: catalog,
		logger:  logging.NewComponentLogger(logger, "aggregate"),
	}
}

// Aggregate returns the merged record for id, or the empty record when the
// detail or credits payloads are unavailable or incomplete. Credits are not
// requested when the detail request fails.
func (a *Aggregator) Aggregate(ctx context.Context, id media.Identity, opts Options) media.Detail {
	logger := logging.WithContext(ctx, a.logger).With(
		logging.String(logging.FieldMediaKind, id.Kind.String()),
		logging.Int64(logging.FieldMediaID, id.ID),
		logging.String(logging.FieldLanguage, id.Language),
	)

	detail, err := a.build(ctx, id, opts)
	if err != nil {
		event := "aggregate_failed"
		if errors.Is(err, tmdb.ErrShape) || errors.Is(err, credits.ErrNoData) || errors.Is(err, ErrShortDate) {
			event = "aggregate_incomplete"
		}
		logging.WarnWithContext(logger, "detail aggregation failed", event,
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "verify the title exists in the requested language"),
			logging.String(logging.FieldImpact, "empty record returned"))
		return media.Detail{}
	}
	logger.Debug("detail aggregated",
		logging.String(logging.FieldEventType, "aggregate_complete"),
		logging.Int("cast", len(detail.Casts)),
		logging.Int("genres", len(detail.Genres)))
	return detail
}

func (a *Aggregator) build(ctx context.Context, id media.Identity, opts Options) (media.Detail, error) {
	if err := id.Validate(); err != nil {
		return media.Detail{}, err
	}

	payload, err := a.catalog.GetDetail(ctx, id.ID, id.Kind, id.Language)
	if err != nil {
		return media.Detail{}, fmt.Errorf("detail: %w", err)
	}

	summary, err := credits.Fetch(ctx, a.catalog, id, opts.CastLimit)
	if err != nil {
		return media.Detail{}, err
	}

	detail := media.Detail{
		Kind:      id.Kind,
		Languages: payload.LanguageNames(),
		Genres:    payload.GenreNames(),
		Casts:     summary.Cast,
		Directors: summary.Directors,
		Writers:   summary.Writers,
	}

	switch id.Kind {
	case media.KindMovie:
		if detail.Year, err = yearOf(payload.ReleaseDate, "release_date"); err != nil {
			return media.Detail{}, err
		}
		detail.IMDbID = payload.IMDb()
	case media.KindTV:
		if detail.Year1, err = yearOf(payload.FirstAirDate, "first_air_date"); err != nil {
			return media.Detail{}, err
		}
		if detail.Year2, err = yearOf(payload.LastAirDate, "last_air_date"); err != nil {
			return media.Detail{}, err
		}
	}

	if opts.IncludeRaw {
		detail.Raw = payload.Raw
	}
	return detail, nil
}

func yearOf(date *string, field string) (string, error) {
	if date == nil || len(*date) < yearLength {
		return "", fmt.Errorf("%w: %s", ErrShortDate, field)
	}
	return (*date)[:yearLength], nil
}
