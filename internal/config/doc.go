// Package config loads, normalizes, and validates bibmerge configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the BIBMERGE_LOG_LEVEL environment fallback.
// Command-line flags are applied on top of the loaded Config by the CLI, so
// always obtain settings through this package to get canonical algorithm and
// format names and clear validation errors.
package config
