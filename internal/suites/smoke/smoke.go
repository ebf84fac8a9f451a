// Package smoke registers a small suite of host sanity checks. They run
// before the indicator suites and verify that the environment behaves the
// way every other test assumes: scratch storage round-trips and the bar
// clock never runs backwards.
package smoke

import (
	"algotest/pkg/assert"
	"algotest/pkg/registry"
	"algotest/pkg/runctx"
)

func init() {
	registry.Register(&registry.Suite{
		Name:      "HostSanity",
		Namespace: "smoke",
		Category:  "smoke",
		Priority:  -10,
		Tags:      "smoke, host",
		Units: []registry.Unit{
			{
				Name:     "ScratchRoundTrip",
				Expected: "a stored value comes back typed",
				Run: func(_ registry.Fixture, c *runctx.Context) {
					c.Set("answer", 42)
					assert.True(c.Contains("answer"))
					assert.Equal(42, runctx.Get[int](c, "answer"))
				},
			},
			{
				Name:     "ScratchMissIsZeroValue",
				Expected: "a missing key reads as the zero value, not a fault",
				Run: func(_ registry.Fixture, c *runctx.Context) {
					assert.False(c.Contains("never-set"))
					assert.Equal(0.0, runctx.Get[float64](c, "never-set"))
					assert.Equal("", runctx.Get[string](c, "never-set"))
				},
			},
			{
				Name:     "HostRevealsCloseSeries",
				Expected: "close history reaches exactly the current bar",
				Run: func(_ registry.Fixture, c *runctx.Context) {
					s, ok := c.Series("close")
					assert.True(ok, "host exposes no close series")
					assert.Equal(c.BarIndex()+1, s.Len())
				},
			},
			{
				Name:     "BarClockMonotonic",
				Expected: "timestamps never run backwards",
				Run: func(_ registry.Fixture, c *runctx.Context) {
					env := c.Env()
					for i := 1; i <= c.BarIndex(); i++ {
						assert.False(env.BarTime(i).Before(env.BarTime(i-1)))
					}
				},
			},
			{
				Name: "TickVolumeProfile",
				Skip: "tick data not available in simulation",
			},
		},
	})
}
