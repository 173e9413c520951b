// Package preflight provides readiness checks for the directories and the
// catalog API that Marquee depends on.
//
// The daemon runs RunAll at startup and logs every failed check; the CLI
// "marquee status" command renders the same results next to the daemon
// probe. Checks never mutate state.
package preflight
