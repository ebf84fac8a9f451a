// Package runctx carries the state shared by the units of one test run: a
// typed scratch map, the per-unit clock, and read-only access to the host
// market environment.
//
// The scratch map is how units of the same suite exchange data without
// widening the fixture:
//
//	tc.Set("signal", cross)
//	...
//	cross := runctx.Get[float64](tc, "signal")
//
// Lookups are soft: a missing key or a mismatched type return the zero
// value. The engine resets the context before every unit, so anything a
// unit wants to outlive the reset belongs on its suite fixture instead.
package runctx
