package simfeed

import (
	"sort"
	"time"

	"algotest/pkg/market"
)

const subsystem = "SimFeed"

// Feed is a bar-clock market environment backed by in-memory series. It
// replays history one bar at a time: the cursor marks the current bar and
// Series only reveals values up to it, the way a live host would.
type Feed struct {
	instrument string
	period     market.Period
	times      []time.Time
	series     map[string][]float64
	names      []string
	cursor     int
}

func newFeed(instrument string, period market.Period, times []time.Time, series map[string][]float64) *Feed {
	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Feed{
		instrument: instrument,
		period:     period,
		times:      times,
		series:     series,
		names:      names,
		cursor:     len(times) - 1,
	}
}

// Instrument returns the symbol the feed describes.
func (f *Feed) Instrument() string { return f.instrument }

// Period returns the bar timeframe.
func (f *Feed) Period() market.Period { return f.period }

// BarIndex returns the current cursor position, -1 before the first bar.
func (f *Feed) BarIndex() int { return f.cursor }

// Bars returns the total number of bars loaded.
func (f *Feed) Bars() int { return len(f.times) }

// BarTime returns the opening timestamp of bar i.
func (f *Feed) BarTime(i int) time.Time { return f.times[i] }

// Series returns the named series revealed up to the cursor.
func (f *Feed) Series(name string) (market.Series, bool) {
	values, ok := f.series[name]
	if !ok {
		return nil, false
	}
	return market.SliceSeries(values[:f.cursor+1]), true
}

// SeriesNames lists the available series, sorted.
func (f *Feed) SeriesNames() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

// Rewind moves the cursor to before the first bar.
func (f *Feed) Rewind() { f.cursor = -1 }

// Advance moves the cursor one bar forward. It returns false when the
// feed is exhausted.
func (f *Feed) Advance() bool {
	if f.cursor+1 >= len(f.times) {
		return false
	}
	f.cursor++
	return true
}

// Seek positions the cursor at bar i. It returns false and leaves the
// cursor alone when i is out of range; -1 is valid and matches Rewind.
func (f *Feed) Seek(i int) bool {
	if i < -1 || i >= len(f.times) {
		return false
	}
	f.cursor = i
	return true
}
