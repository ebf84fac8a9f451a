// Package market defines the read-only host interfaces the test framework
// runs against: the bar-clock environment and its named data series.
//
// The framework never drives the market, it only observes. A production
// host adapts its chart/feed objects to Environment; the repository ships a
// simulated implementation in internal/simfeed for the CLI and for tests.
package market
