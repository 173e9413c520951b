package api

import (
	"encoding/json"

	"marquee/internal/language"
	"marquee/internal/media"
)

// FromDetail converts an aggregated record to its API representation. The
// title and poster come from the raw payload when the record carries one.
func FromDetail(id media.Identity, detail media.Detail) DetailView {
	view := DetailView{
		Kind:      id.Kind.String(),
		ID:        id.ID,
		Language:  id.Language,
		Found:     !detail.IsEmpty(),
		Genres:    orEmpty(detail.Genres),
		Languages: orEmpty(detail.Languages),
		Casts:     orEmpty(detail.Casts),
		Directors: orEmpty(detail.Directors),
		Writers:   orEmpty(detail.Writers),
		PageURL:   media.PageURL(id.Kind, id.ID),
	}
	if !view.Found {
		return view
	}
	view.Title = rawTitle(detail.Raw)
	view.IMDbID = detail.IMDbID
	view.Year = detail.Year
	view.Year1 = detail.Year1
	view.Year2 = detail.Year2
	view.IMDbURL = media.IMDbURL(detail.IMDbID)
	if poster := rawField(detail.Raw, "poster_path", ""); poster != "" {
		view.PosterURL = media.PosterURL(poster)
	}
	return view
}

// FromTrailers wraps a trailer list for one title.
func FromTrailers(id media.Identity, trailers []media.Trailer) TrailerListResponse {
	if trailers == nil {
		trailers = []media.Trailer{}
	}
	return TrailerListResponse{
		Kind:     id.Kind.String(),
		ID:       id.ID,
		Language: id.Language,
		Trailers: trailers,
	}
}

// FromHits decorates each movie and series hit with page and poster links.
// Other hits are returned unchanged.
func FromHits(query, language string, hits []media.Hit) SearchResponse {
	results := make([]media.Hit, 0, len(hits))
	for _, hit := range hits {
		results = append(results, DecorateHit(hit))
	}
	return SearchResponse{Query: query, Language: language, Results: results}
}

// DecorateHit appends page_url and, when the hit has a poster, poster_url.
// Fields already on the hit are kept.
func DecorateHit(hit media.Hit) media.Hit {
	mediaType, err := hit.MediaType()
	if err != nil {
		return hit
	}
	kind, err := media.ParseKind(mediaType)
	if err != nil {
		return hit
	}
	id, err := hit.ID()
	if err != nil {
		return hit
	}
	links := map[string]string{"page_url": media.PageURL(kind, id)}
	if poster := hit.String("poster_path"); poster != "" {
		links["poster_url"] = media.PosterURL(poster)
	}
	doc, err := json.Marshal(links)
	if err != nil {
		return hit
	}
	decorated, err := hit.Enrich(doc)
	if err != nil {
		return hit
	}
	return decorated
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// NewLanguageResponse reports lang as userID's preference.
func NewLanguageResponse(userID int64, lang string) LanguageResponse {
	return LanguageResponse{UserID: userID, Language: lang, DisplayName: language.DisplayName(lang)}
}
