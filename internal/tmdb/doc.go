// Package tmdb is the catalog client for The Movie Database v3 API.
//
// It issues authenticated GET requests for title details, credits, videos,
// and multi-search, decodes the responses into typed payloads, and validates
// that every field downstream code depends on is present before returning.
// A non-200 status surfaces as *StatusError (matching ErrTransport) and a
// payload missing a required field surfaces as *ShapeError (matching
// ErrShape). No partial payload is returned together with an error.
package tmdb
