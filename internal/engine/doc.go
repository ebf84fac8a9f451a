// Package engine executes discovered test plans against a host
// environment.
//
// Execution is strictly sequential: one engine goroutine walks the suites
// in plan order and the units within each suite in their planned order.
// Unit bodies run inside a fault boundary that converts assertion signals
// into Failed results, halt signals into Inconclusive results and any
// other fault into a Failed result carrying the fault kind and the head
// of its stack. A unit whose measured duration exceeds its timeout ends
// as TimedOut regardless of what the body produced; its message is kept.
//
// Fixture lifecycle per suite: the constructor runs first (a fault there
// yields a single synthetic Failed result and no units run), then the run
// context is injected into fixtures that want it, then SetUp, the units,
// and TearDown. A SetUp fault fails every unit of the suite without
// invoking any body; a TearDown fault appends one synthetic Failed result
// after the units.
//
// The Controller connects an engine to the host's bar clock and applies
// the start-bar threshold and the run-once/every-tick policy.
package engine
