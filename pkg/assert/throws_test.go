package assert

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type decodeError struct{ line int }

func (e *decodeError) Error() string { return "decode failed" }

func TestThrowsMatchingKind(t *testing.T) {
	err := Throws[*decodeError](func() { panic(&decodeError{line: 12}) })
	require.Equal(t, 12, err.line)
}

func TestThrowsInterfaceKind(t *testing.T) {
	err := Throws[error](func() { panic(errors.New("boom")) })
	require.EqualError(t, err, "boom")
}

func TestThrowsNoFault(t *testing.T) {
	f := failureOf(t, func() {
		Throws[*decodeError](func() {})
	})
	require.Contains(t, f.Message, "*assert.decodeError")
	require.Contains(t, f.Message, "no fault")
}

func TestThrowsWrongKind(t *testing.T) {
	f := failureOf(t, func() {
		Throws[*decodeError](func() { panic("plain string") })
	})
	require.Contains(t, f.Message, "*assert.decodeError")
	require.Contains(t, f.Message, "string")
	require.Contains(t, f.Message, "plain string")
}

func TestNotThrows(t *testing.T) {
	NotThrows(func() {})

	f := failureOf(t, func() {
		NotThrows(func() { panic("surprise") })
	})
	require.Contains(t, f.Message, "Expected: no fault")
	require.Contains(t, f.Message, "surprise")
}

func TestThrowsMessageOverride(t *testing.T) {
	f := failureOf(t, func() {
		Throws[*decodeError](func() {}, "parser must reject header row")
	})
	require.Equal(t, "parser must reject header row", f.Message)
}
