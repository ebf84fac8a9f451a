// Package assert provides the assertion primitives test units are written
// with. A violated assertion raises a *Failure signal (a typed panic) that
// the execution engine's fault boundary catches and maps to the Failed
// status; everything else escaping a unit body is classified as an
// unexpected fault.
//
// Primitives accept an optional message override, testify style: a single
// string, or a format string plus arguments. Without an override the
// message reads
//
//	Expected: <expected>, but was: <actual>
//
// Numeric comparison is tolerance-based: FloatEqual uses DefaultDelta
// (1e-4 absolute difference), InDelta takes an explicit delta. InRange,
// Positive and StringContains are extension helpers layered on the
// primitives; domain-specific helpers should be built the same way.
package assert
