// Package media defines the catalog values shared by every Marquee layer:
// media kinds, title identities, aggregated detail records, trailer
// candidates, raw search hits, and the composite cache keys built from them.
//
// The types here carry no I/O. Records serialize to the same JSON documents
// the cache store has always held, so previously cached values remain
// readable.
package media
