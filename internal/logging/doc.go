// Package logging assembles structured slog loggers and formatting helpers
// used across bibmerge.
//
// It owns the console/JSON handlers, centralizes level and output plumbing,
// and exposes context-aware helpers so every line of a merge run carries the
// same correlation ID. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
package logging
