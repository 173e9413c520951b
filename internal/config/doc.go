// Package config loads, normalizes, and validates Marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_READ_ACCESS_TOKEN and TMDB_API_KEY. The Config type centralizes the
// catalog credentials, cache backend, trailer fallback policy, and HTTP bind
// address used by both the CLI and the daemon.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
