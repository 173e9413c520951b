// Package mediacache memoizes aggregated catalog records behind composite
// string keys.
//
// GetOrCompute returns a stored value verbatim when its key exists and
// otherwise computes, stores, and returns it. Entries are write-once: nothing
// in this package expires, evicts, or refreshes a key. Values are persisted
// as JSON documents grouped into named collections through a Store, with
// SQLite, single-file JSON, and in-memory backends available.
//
// Concurrent first resolutions of the same key may both compute and the last
// write wins, unless coalescing is enabled, in which case callers share one
// in-flight computation per key.
package mediacache
