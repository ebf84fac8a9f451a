// Package indicators registers the indicator verification suites that
// ship with algotest. Each suite exercises one indicator implementation
// against the host's bar series and registers itself at import time.
package indicators

import (
	"math"

	"algotest/pkg/assert"
	"algotest/pkg/market"
	"algotest/pkg/registry"
	"algotest/pkg/runctx"
)

// sma returns the simple moving average of the last window values.
func sma(s market.Series, window int) float64 {
	sum := 0.0
	for i := s.Len() - window; i < s.Len(); i++ {
		sum += s.At(i)
	}
	return sum / float64(window)
}

// windowBounds returns the lowest and highest value among the last window
// entries.
func windowBounds(s market.Series, window int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := s.Len() - window; i < s.Len(); i++ {
		lo = math.Min(lo, s.At(i))
		hi = math.Max(hi, s.At(i))
	}
	return lo, hi
}

type smaFixture struct {
	ctx *runctx.Context
}

func (f *smaFixture) SetContext(c *runctx.Context) { f.ctx = c }

func (f *smaFixture) closes() market.Series {
	s, ok := f.ctx.Series("close")
	if !ok {
		panic("host exposes no close series")
	}
	return s
}

func init() {
	registry.Register(&registry.Suite{
		Name:      "SMA",
		Namespace: "indicators",
		Category:  "trend",
		MinBars:   30,
		Tags:      "sma, average, trend",
		New:       func() (registry.Fixture, error) { return &smaFixture{}, nil },
		Units: []registry.Unit{
			{
				Name:     "SingleBarWindowEqualsClose",
				Expected: "a window of one bar is the close itself",
				Run: registry.Bind(func(f *smaFixture, c *runctx.Context) {
					closes := f.closes()
					assert.FloatEqual(closes.Last(), sma(closes, 1))
				}),
			},
			{
				Name:     "StaysInsideWindowRange",
				Expected: "an average never leaves the range of its inputs",
				Run: registry.Bind(func(f *smaFixture, c *runctx.Context) {
					closes := f.closes()
					lo, hi := windowBounds(closes, 20)
					assert.InRange(sma(closes, 20), lo, hi)
				}),
			},
			{
				Name:     "MatchesNaiveAverage",
				Expected: "windowed sum and naive loop agree",
				Run: registry.Bind(func(f *smaFixture, c *runctx.Context) {
					closes := f.closes()
					sum := 0.0
					for i := closes.Len() - 5; i < closes.Len(); i++ {
						sum += closes.At(i)
					}
					assert.FloatEqual(sum/5, sma(closes, 5))
				}),
			},
			{
				Name:     "CachesWindowInScratch",
				Expected: "a recomputed average matches the cached one",
				Run: registry.Bind(func(f *smaFixture, c *runctx.Context) {
					closes := f.closes()
					c.Set("sma.20", sma(closes, 20))
					assert.True(c.Contains("sma.20"))
					assert.FloatEqual(runctx.Get[float64](c, "sma.20"), sma(closes, 20))
				}),
			},
		},
	})
}
