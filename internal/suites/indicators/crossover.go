package indicators

import (
	"algotest/pkg/assert"
	"algotest/pkg/registry"
	"algotest/pkg/runctx"
)

// crossIndex returns the first index at which fast closes above slow after
// having been at or below it on the previous bar, -1 when no cross occurs.
// Both series must have the same length.
func crossIndex(fast, slow []float64) int {
	if len(fast) != len(slow) {
		panic("crossover: series length mismatch")
	}
	for i := 1; i < len(fast); i++ {
		if fast[i-1] <= slow[i-1] && fast[i] > slow[i] {
			return i
		}
	}
	return -1
}

type crossFixture struct {
	rising   []float64
	midline  []float64
	parallel []float64
}

func (f *crossFixture) SetUp() error {
	f.rising = []float64{1.0, 2.0, 3.0, 4.0}
	f.midline = []float64{2.5, 2.5, 2.5, 2.5}
	f.parallel = []float64{2.0, 3.0, 4.0, 5.0}
	return nil
}

func (f *crossFixture) TearDown() error {
	f.rising, f.midline, f.parallel = nil, nil, nil
	return nil
}

func init() {
	registry.Register(&registry.Suite{
		Name:      "Crossover",
		Namespace: "indicators",
		Category:  "signal",
		Tags:      "crossover, signal",
		Priority:  5,
		New:       func() (registry.Fixture, error) { return &crossFixture{}, nil },
		Units: []registry.Unit{
			{
				Name:     "DetectsUpwardCross",
				Expected: "the cross lands on the bar where fast overtakes slow",
				Run: registry.Bind(func(f *crossFixture, c *runctx.Context) {
					assert.Equal(2, crossIndex(f.rising, f.midline))
				}),
			},
			{
				Name:     "SilentWhenAlwaysAbove",
				Expected: "no signal without an actual crossing",
				Run: registry.Bind(func(f *crossFixture, c *runctx.Context) {
					assert.Equal(-1, crossIndex(f.parallel, f.rising))
				}),
			},
			{
				Name:     "FaultsOnLengthMismatch",
				Expected: "mismatched series are a programming error",
				Run: registry.Bind(func(f *crossFixture, c *runctx.Context) {
					msg := assert.Throws[string](func() {
						crossIndex(f.rising, f.midline[:2])
					})
					assert.StringContains(msg, "length mismatch")
				}),
			},
		},
	})
}
