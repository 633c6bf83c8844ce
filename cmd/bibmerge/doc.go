// Package main hosts the bibmerge CLI entrypoint and command graph.
//
// The Cobra-based command tree resolves configuration, applies flag
// overrides, and hands parsed bibliographies to the dedupe package. Keep this
// package lean: new behaviour belongs in the internal packages first and is
// only surfaced here through commands or flags.
package main
