package assert

import (
	"fmt"
	"math"
)

// DefaultDelta is the tolerance FloatEqual compares under: two floats are
// considered equal when their absolute difference does not exceed it.
const DefaultDelta = 1e-4

// FloatEqual asserts that actual is within DefaultDelta of expected.
func FloatEqual(expected, actual float64, msgAndArgs ...interface{}) {
	InDelta(expected, actual, DefaultDelta, msgAndArgs...)
}

// InDelta asserts that the absolute difference between expected and actual
// does not exceed delta. The failure message carries both values and the
// computed difference.
func InDelta(expected, actual, delta float64, msgAndArgs ...interface{}) {
	diff := math.Abs(expected - actual)
	if diff > delta || math.IsNaN(diff) {
		raise(fmt.Sprintf("Expected: %v ±%v, but was: %v (difference %.6g)",
			expected, delta, actual, diff), msgAndArgs)
	}
}

// InRange asserts lo <= value <= hi. Built on the public primitives only.
func InRange(value, lo, hi float64, msgAndArgs ...interface{}) {
	if len(msgAndArgs) == 0 {
		msgAndArgs = []interface{}{"Expected: value in [%v, %v], but was: %v", lo, hi, value}
	}
	True(value >= lo && value <= hi, msgAndArgs...)
}

// Positive asserts value > 0. Built on the public primitives only.
func Positive(value float64, msgAndArgs ...interface{}) {
	if len(msgAndArgs) == 0 {
		msgAndArgs = []interface{}{"Expected: positive value, but was: %v", value}
	}
	True(value > 0, msgAndArgs...)
}
