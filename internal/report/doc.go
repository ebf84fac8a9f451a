// Package report owns everything downstream of execution: result and
// status types, on-demand aggregation, the line sink abstraction, the
// console renderer and the JSON export.
//
// Aggregates are never stored on the summary: Stats and BySuite recompute
// from the flat result list, so the numbers cannot drift from the results
// they describe.
package report
