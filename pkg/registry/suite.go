package registry

import (
	"strings"
	"time"

	"algotest/pkg/market"
	"algotest/pkg/runctx"
)

// Fixture is the per-run instance of a suite. The engine constructs it via
// Suite.New once per run and hands the same instance to every unit of the
// suite.
type Fixture interface{}

// ContextAware fixtures get the shared run context injected right after
// construction, before any unit runs.
type ContextAware interface {
	SetContext(*runctx.Context)
}

// Initializer fixtures run SetUp once before the suite's first unit. An
// error or fault marks all the suite's units as failed.
type Initializer interface {
	SetUp() error
}

// Finisher fixtures run TearDown once after the suite's last unit. An
// error or fault appends a synthetic failed result to the suite.
type Finisher interface {
	TearDown() error
}

// Unit declares a single test unit. All fields except Run are inert
// metadata; the discovery engine is driven by them alone.
type Unit struct {
	Name string // unique within the suite

	// Disabled removes the unit from discovery entirely.
	Disabled bool

	// Skip, when non-empty, reports the unit as Skipped with this reason.
	// The body is never invoked.
	Skip string

	// Timeout bounds the unit's execution when > 0. A unit that runs
	// longer ends up TimedOut rather than Failed.
	Timeout time.Duration

	// Priority orders units within their suite, ascending. Ties keep
	// declaration order.
	Priority int

	// Expected documents the expected outcome. Reporting only.
	Expected string

	Run func(Fixture, *runctx.Context)
}

// Suite declares a group of units sharing one fixture instance per run.
type Suite struct {
	Name string // unique within the registry

	// Namespace groups suites for prefix filtering, e.g.
	// "algotest.indicators".
	Namespace string

	// Category labels the suite for reporting.
	Category string

	// Disabled removes the suite from discovery entirely.
	Disabled bool

	// RunAtBar pins the suite to a single bar index: it is discovered only
	// when the host's current position equals it. Nil means any bar.
	RunAtBar *int

	// MinBars gates the suite on history depth: with fewer bars available
	// the suite is reported as skipped, not dropped.
	MinBars int

	// RequiredPeriod gates the suite on the host timeframe, same skip
	// semantics as MinBars.
	RequiredPeriod market.Period

	// Tags holds labels separated by commas, spaces or semicolons.
	Tags string

	// Priority orders suites in the run, ascending. Ties keep
	// registration order.
	Priority int

	// New constructs the suite's fixture. Nil declares a fixture-less
	// suite; its units receive a nil Fixture.
	New func() (Fixture, error)

	// Units are the statically declared units.
	Units []Unit

	// UnitsFunc enumerates units dynamically at discovery time, appended
	// after Units. A fault while enumerating skips this suite only.
	UnitsFunc func() []Unit
}

// TagList splits the Tags field into its labels.
func (s *Suite) TagList() []string {
	return strings.FieldsFunc(s.Tags, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
}

// HasTag reports whether the suite carries the given tag. Matching is
// case-insensitive.
func (s *Suite) HasTag(tag string) bool {
	for _, t := range s.TagList() {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Bar is a convenience for literal Suite declarations pinning RunAtBar.
func Bar(i int) *int { return &i }

// Bind adapts a unit body typed on the suite's concrete fixture to the
// generic Run signature:
//
//	Run: registry.Bind(func(fx *emaChecks, tc *runctx.Context) { ... })
func Bind[F Fixture](fn func(F, *runctx.Context)) func(Fixture, *runctx.Context) {
	return func(fx Fixture, tc *runctx.Context) {
		fn(fx.(F), tc)
	}
}
