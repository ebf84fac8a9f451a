// Package registry is how test suites make themselves known to the
// framework. There is no reflection scan: a suite package declares its
// metadata and units as plain values and registers them from init, and the
// binary that should run them imports the package for the side effect.
//
//	func init() {
//		registry.Register(&registry.Suite{
//			Name:      "EmaCross",
//			Namespace: "algotest.indicators",
//			Tags:      "ema, smoothing",
//			MinBars:   50,
//			New:       func() (registry.Fixture, error) { return &emaChecks{}, nil },
//			Units: []registry.Unit{
//				{Name: "ConvergesToPrice", Run: registry.Bind(emaConverges)},
//				{Name: "LagsSpikes", Skip: "reference data not ready"},
//			},
//		})
//	}
//
// All metadata is inert: registering a suite never executes test code, and
// the discovery engine works from these records alone.
package registry
