// Package logging assembles structured slog loggers and formatting helpers used
// across Marquee.
//
// It owns the configurable console/JSON handlers, rotates log files through
// lumberjack, and exposes context-aware helpers so request handlers can tag
// log lines with correlation IDs, users, and languages. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
