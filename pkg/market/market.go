package market

import (
	"strings"
	"time"
)

// Period identifies the timeframe of a bar series, e.g. "m1", "m5", "h1".
type Period string

const (
	PeriodM1  Period = "m1"
	PeriodM5  Period = "m5"
	PeriodM15 Period = "m15"
	PeriodM30 Period = "m30"
	PeriodH1  Period = "h1"
	PeriodH4  Period = "h4"
	PeriodD1  Period = "d1"
)

var periodDurations = map[Period]time.Duration{
	PeriodM1:  time.Minute,
	PeriodM5:  5 * time.Minute,
	PeriodM15: 15 * time.Minute,
	PeriodM30: 30 * time.Minute,
	PeriodH1:  time.Hour,
	PeriodH4:  4 * time.Hour,
	PeriodD1:  24 * time.Hour,
}

// Duration returns the wall-clock length of one bar, zero for an unknown
// period.
func (p Period) Duration() time.Duration {
	return periodDurations[p]
}

// ParsePeriod maps a case-insensitive period name to a Period.
func ParsePeriod(s string) (Period, bool) {
	p := Period(strings.ToLower(s))
	_, ok := periodDurations[p]
	return p, ok
}

// Series is a read-only numeric series aligned with the host's bar clock.
// Index 0 is the oldest bar. Implementations must not expose mutation.
type Series interface {
	// Len returns the number of values available.
	Len() int
	// At returns the value at index i. Indexing past Len-1 is a
	// programming error and panics, same as a slice.
	At(i int) float64
	// Last returns the most recent value. Panics when the series is empty.
	Last() float64
}

// Environment is the read-only view of the host a test run executes
// against. The engine snapshots it per result; units reach it through the
// run context. Timestamps are monotonic: BarTime(i) never decreases as i
// grows.
type Environment interface {
	// Instrument returns the symbol the host is attached to.
	Instrument() string
	// Period returns the timeframe of the host's bar series.
	Period() Period
	// BarIndex returns the current position, the index of the most recent
	// bar. -1 means no bar has arrived yet.
	BarIndex() int
	// Bars returns the number of bars available so far.
	Bars() int
	// BarTime returns the opening timestamp of bar i.
	BarTime(i int) time.Time
	// Series looks up a named data series (e.g. "close", "volume").
	Series(name string) (Series, bool)
	// SeriesNames enumerates the available series names, sorted.
	SeriesNames() []string
}

// SliceSeries adapts a float64 slice to the Series interface.
type SliceSeries []float64

func (s SliceSeries) Len() int         { return len(s) }
func (s SliceSeries) At(i int) float64 { return s[i] }
func (s SliceSeries) Last() float64    { return s[len(s)-1] }
