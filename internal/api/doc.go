// Package api defines wire-format types and converters for the HTTP API and
// the CLI's JSON output. It translates aggregated records into
// presentation-friendly views that carry ready-to-use links.
//
// # Key Types
//
// DetailView: normalized detail fields plus page, poster, and IMDb links.
//
// TrailerListResponse: the ranked trailer list for one title.
//
// SearchResponse: enriched search hits, each decorated with page and poster
// links.
//
// HealthStatus: daemon liveness and per-collection cache sizes.
//
// # Design Notes
//
// DTOs use snake_case JSON tags so the views line up with the catalog's own
// field names that search hits carry through unchanged. Trailer URLs are
// null, never omitted, when no playable link exists.
package api
