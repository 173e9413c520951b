// Command marquee is the command-line client for the Marquee media
// aggregation layer.
//
// It runs searches, detail and trailer lookups directly against the catalog
// and the shared cache store, manages user language preferences and cache
// contents, and can host the HTTP API in the foreground with `marquee serve`.
// Output is rendered as tables on a terminal and as JSON when piped or when
// --json is given.
package main
