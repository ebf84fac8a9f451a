package assert

import (
	"fmt"
	"reflect"
)

// Failure is the distinguished signal raised by every assertion primitive.
// The execution engine's fault boundary recognizes it and maps it to the
// Failed status with the message carried here, verbatim. Any other panic
// value is treated as an unexpected fault.
type Failure struct {
	Message string
}

func (f *Failure) Error() string { return f.Message }

// Halt is the signal raised by Inconclusivef. The engine maps it to the
// Inconclusive status instead of Failed.
type Halt struct {
	Message string
}

func (h *Halt) Error() string { return h.Message }

// raise aborts the current unit with a Failure. When the caller supplied a
// message override it replaces the default.
func raise(defaultMsg string, msgAndArgs []interface{}) {
	if msg := messageFromMsgAndArgs(msgAndArgs); msg != "" {
		defaultMsg = msg
	}
	panic(&Failure{Message: defaultMsg})
}

func messageFromMsgAndArgs(msgAndArgs []interface{}) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}
		return fmt.Sprint(msgAndArgs...)
	}
}

// True asserts that cond holds.
func True(cond bool, msgAndArgs ...interface{}) {
	if !cond {
		raise("Expected: true, but was: false", msgAndArgs)
	}
}

// False asserts that cond does not hold.
func False(cond bool, msgAndArgs ...interface{}) {
	if cond {
		raise("Expected: false, but was: true", msgAndArgs)
	}
}

// Equal asserts deep equality between expected and actual. Numeric values
// of different types are not coerced; use FloatEqual or InDelta for
// tolerance-based numeric comparison.
func Equal(expected, actual interface{}, msgAndArgs ...interface{}) {
	if !reflect.DeepEqual(expected, actual) {
		raise(fmt.Sprintf("Expected: %v, but was: %v", expected, actual), msgAndArgs)
	}
}

// NotEqual asserts that expected and actual differ.
func NotEqual(expected, actual interface{}, msgAndArgs ...interface{}) {
	if reflect.DeepEqual(expected, actual) {
		raise(fmt.Sprintf("Expected: not %v, but was: %v", expected, actual), msgAndArgs)
	}
}

// Nil asserts that v is nil, either as an untyped nil or as a nil value of
// a nilable kind.
func Nil(v interface{}, msgAndArgs ...interface{}) {
	if !isNil(v) {
		raise(fmt.Sprintf("Expected: <nil>, but was: %v", v), msgAndArgs)
	}
}

// NotNil asserts that v is not nil.
func NotNil(v interface{}, msgAndArgs ...interface{}) {
	if isNil(v) {
		raise("Expected: not <nil>, but was: <nil>", msgAndArgs)
	}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

// Fail aborts the unit unconditionally.
func Fail(msgAndArgs ...interface{}) {
	raise("assertion failed", msgAndArgs)
}

// Inconclusivef aborts the unit with the Inconclusive status, for checks
// whose preconditions were not met rather than violated.
func Inconclusivef(format string, args ...interface{}) {
	panic(&Halt{Message: fmt.Sprintf(format, args...)})
}
