// Package daemon coordinates the long-running Marquee process.
//
// It wires configuration and the domain services into a single lifecycle
// with flock-based locking to prevent multiple instances, and owns the JSON
// HTTP API served to presentation clients.
//
// Keep request handling thin here: aggregation, caching, and trailer
// selection live in their own packages while the daemon focuses on startup,
// shutdown, routing, and transport concerns.
package daemon
