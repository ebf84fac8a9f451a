package indicators

import (
	"fmt"
	"time"

	"algotest/pkg/assert"
	"algotest/pkg/registry"
	"algotest/pkg/runctx"
)

// emaSeries computes an exponential moving average over values with the
// conventional smoothing factor 2/(window+1), seeded at the first value.
func emaSeries(values []float64, window int) []float64 {
	alpha := 2.0 / (float64(window) + 1)
	out := make([]float64, len(values))
	for i, v := range values {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = alpha*v + (1-alpha)*out[i-1]
	}
	return out
}

type emaFixture struct {
	ctx *runctx.Context
}

func (f *emaFixture) SetContext(c *runctx.Context) { f.ctx = c }

func (f *emaFixture) hostCloses() []float64 {
	s, ok := f.ctx.Series("close")
	if !ok {
		panic("host exposes no close series")
	}
	values := make([]float64, s.Len())
	for i := range values {
		values[i] = s.At(i)
	}
	return values
}

// emaWindowUnits enumerates one bounds check per common window size.
func emaWindowUnits() []registry.Unit {
	units := make([]registry.Unit, 0, 3)
	for _, window := range []int{5, 10, 20} {
		w := window
		units = append(units, registry.Unit{
			Name:     fmt.Sprintf("Window%dStaysBounded", w),
			Expected: "a smoothed series never escapes its input range",
			Priority: 10,
			Run: registry.Bind(func(f *emaFixture, c *runctx.Context) {
				values := f.hostCloses()
				lo, hi := values[0], values[0]
				for _, v := range values {
					if v < lo {
						lo = v
					}
					if v > hi {
						hi = v
					}
				}
				out := emaSeries(values, w)
				assert.InRange(out[len(out)-1], lo, hi)
			}),
		})
	}
	return units
}

func init() {
	registry.Register(&registry.Suite{
		Name:      "EMA",
		Namespace: "indicators",
		Category:  "trend",
		MinBars:   30,
		Tags:      "ema, average, trend",
		Priority:  1,
		New:       func() (registry.Fixture, error) { return &emaFixture{}, nil },
		UnitsFunc: emaWindowUnits,
		Units: []registry.Unit{
			{
				Name:     "FlatSeriesStaysFlat",
				Expected: "smoothing a constant changes nothing",
				Run: registry.Bind(func(f *emaFixture, c *runctx.Context) {
					flat := []float64{1.25, 1.25, 1.25, 1.25, 1.25, 1.25}
					for _, v := range emaSeries(flat, 5) {
						assert.FloatEqual(1.25, v)
					}
				}),
			},
			{
				Name:     "WindowOneTracksPrice",
				Expected: "alpha of one reproduces the input",
				Timeout:  250 * time.Millisecond,
				Run: registry.Bind(func(f *emaFixture, c *runctx.Context) {
					values := f.hostCloses()
					out := emaSeries(values, 1)
					for i := range values {
						assert.FloatEqual(values[i], out[i])
					}
				}),
			},
			{
				Name:     "SeedEqualsFirstValue",
				Expected: "the series is seeded at its first input",
				Run: registry.Bind(func(f *emaFixture, c *runctx.Context) {
					values := f.hostCloses()
					assert.FloatEqual(values[0], emaSeries(values, 10)[0])
				}),
			},
		},
	})
}
