package report

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a unit's result. A result starts
// Pending and moves to Running when the engine picks it up; it always ends
// in exactly one terminal status.
type Status string

const (
	StatusPending      Status = "PENDING"
	StatusRunning      Status = "RUNNING"
	StatusPassed       Status = "PASSED"
	StatusFailed       Status = "FAILED"
	StatusSkipped      Status = "SKIPPED"
	StatusInconclusive Status = "INCONCLUSIVE"
	StatusTimedOut     Status = "TIMED_OUT"
	StatusErrored      Status = "ERRORED"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusSkipped, StatusInconclusive, StatusTimedOut, StatusErrored:
		return true
	}
	return false
}

// Bad reports whether the status should fail the run.
func (s Status) Bad() bool {
	switch s {
	case StatusFailed, StatusTimedOut, StatusErrored:
		return true
	}
	return false
}

// Symbol returns the display glyph for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusPassed:
		return "✅"
	case StatusFailed:
		return "❌"
	case StatusSkipped:
		return "⏭️"
	case StatusInconclusive:
		return "🤷"
	case StatusTimedOut:
		return "⏱️"
	case StatusErrored:
		return "💥"
	case StatusRunning:
		return "🔄"
	default:
		return "❓"
	}
}

// Result is the outcome of one unit (or of a synthetic step such as a
// failed constructor or teardown). The host position is snapshotted at
// execution time so a result stays meaningful detached from its summary.
type Result struct {
	Suite    string        `json:"suite"`
	Unit     string        `json:"unit"`
	Status   Status        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Trace    string        `json:"trace,omitempty"`
	Expected string        `json:"expected,omitempty"`
	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`

	Instrument string    `json:"instrument"`
	Period     string    `json:"period"`
	BarIndex   int       `json:"bar_index"`
	BarTime    time.Time `json:"bar_time"`
}

// FullName returns "Suite.Unit".
func (r Result) FullName() string {
	return fmt.Sprintf("%s.%s", r.Suite, r.Unit)
}
