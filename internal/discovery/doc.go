// Package discovery turns the suite registry into an ordered run plan. It
// applies the configured namespace and name filters, the run-at pin, and
// the host gates (history depth, timeframe), and it isolates faults: a
// suite whose unit enumeration panics is dropped with a warning while the
// rest of the plan survives.
package discovery
