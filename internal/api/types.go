package api

import "marquee/internal/media"

// DetailView describes one aggregated title in a transport-friendly format.
type DetailView struct {
	Kind      string   `json:"kind"`
	ID        int64    `json:"id"`
	Language  string   `json:"language"`
	Found     bool     `json:"found"`
	Title     string   `json:"title,omitempty"`
	IMDbID    string   `json:"imdb_id,omitempty"`
	Year      string   `json:"year,omitempty"`
	Year1     string   `json:"year1,omitempty"`
	Year2     string   `json:"year2,omitempty"`
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
	Casts     []string `json:"casts"`
	Directors []string `json:"directors"`
	Writers   []string `json:"writers"`
	PageURL   string   `json:"page_url"`
	PosterURL string   `json:"poster_url,omitempty"`
	IMDbURL   string   `json:"imdb_url,omitempty"`
}

// TrailerListResponse wraps the ranked trailers of a title.
type TrailerListResponse struct {
	Kind     string          `json:"kind"`
	ID       int64           `json:"id"`
	Language string          `json:"language"`
	Trailers []media.Trailer `json:"trailers"`
}

// SearchResponse wraps one page of enriched search hits.
type SearchResponse struct {
	Query    string      `json:"query"`
	Language string      `json:"language"`
	Results  []media.Hit `json:"results"`
}

// LanguageResponse reports a user's language preference.
type LanguageResponse struct {
	UserID      int64  `json:"user_id"`
	Language    string `json:"language"`
	DisplayName string `json:"display_name"`
}

// LanguageRequest is the body accepted when setting a preference.
type LanguageRequest struct {
	Language string `json:"language"`
}

// HealthStatus aggregates daemon runtime information for API consumers.
type HealthStatus struct {
	Status       string         `json:"status"`
	Backend      string         `json:"backend"`
	LockFilePath string         `json:"lock_file_path,omitempty"`
	Entries      map[string]int `json:"entries"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
