// Package simfeed provides the simulated market hosts runs execute
// against outside a live platform.
//
// A Feed holds bar history in memory and implements market.Environment
// with replay semantics: a cursor marks the current bar, Series reveals
// values only up to it, and Advance moves the clock forward. Feeds come
// from YAML bar files (FromFile) or from a deterministic generator
// (Synthetic) when no data is at hand.
//
// Clock replays a feed against a bar handler, which is how the engine's
// trigger controller gets its bar events in simulation. Watcher reruns a
// callback when the bar file changes on disk, for a rerun-on-save loop
// during development.
package simfeed
