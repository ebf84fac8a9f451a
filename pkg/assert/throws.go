package assert

import (
	"fmt"
	"reflect"
	"strings"
)

// Throws runs op and asserts that it faults with a value assignable to T.
// The recovered value is returned typed, so callers can inspect it:
//
//	err := assert.Throws[*feed.DecodeError](func() { feed.MustParse(raw) })
//	assert.StringContains(err.Error(), "bad header")
//
// A run to completion, or a fault of a different kind, aborts the unit with
// a message naming the expected and the actual kind.
func Throws[T any](op func(), msgAndArgs ...interface{}) T {
	want := reflect.TypeFor[T]()
	recovered, faulted := capture(op)
	if !faulted {
		raise(fmt.Sprintf("Expected: fault of kind %v, but was: no fault", want), msgAndArgs)
	}
	typed, ok := recovered.(T)
	if !ok {
		raise(fmt.Sprintf("Expected: fault of kind %v, but was: %T (%v)", want, recovered, recovered), msgAndArgs)
	}
	return typed
}

// NotThrows runs op and asserts that it returns normally.
func NotThrows(op func(), msgAndArgs ...interface{}) {
	recovered, faulted := capture(op)
	if faulted {
		raise(fmt.Sprintf("Expected: no fault, but was: %T (%v)", recovered, recovered), msgAndArgs)
	}
}

// capture runs op and reports whether it panicked, along with the value.
func capture(op func()) (recovered interface{}, faulted bool) {
	defer func() { recovered = recover() }()
	faulted = true
	op()
	faulted = false
	return
}

// StringContains asserts that s contains substr. Built on the public
// primitives only.
func StringContains(s, substr string, msgAndArgs ...interface{}) {
	if len(msgAndArgs) == 0 {
		msgAndArgs = []interface{}{"Expected: string containing %q, but was: %q", substr, s}
	}
	True(strings.Contains(s, substr), msgAndArgs...)
}
