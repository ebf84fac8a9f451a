package simfeed

import (
	"math"
	"time"

	"algotest/pkg/logging"
	"algotest/pkg/market"
)

// DefaultSyntheticBars is the series length Synthetic produces when the
// caller does not ask for a specific count.
const DefaultSyntheticBars = 240

var syntheticStart = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

// Synthetic builds a deterministic feed for runs without a data file: a
// gently trending price with two overlaid oscillations, so moving-average
// and crossover suites have something to chew on. The same arguments
// always produce the same series.
func Synthetic(instrument string, period market.Period, bars int) *Feed {
	if bars <= 0 {
		bars = DefaultSyntheticBars
	}
	step := period.Duration()
	if step == 0 {
		step = market.PeriodM5.Duration()
	}

	times := make([]time.Time, bars)
	series := map[string][]float64{
		"open":   make([]float64, bars),
		"high":   make([]float64, bars),
		"low":    make([]float64, bars),
		"close":  make([]float64, bars),
		"volume": make([]float64, bars),
	}

	prev := 1.1000
	for i := 0; i < bars; i++ {
		times[i] = syntheticStart.Add(time.Duration(i) * step)

		c := 1.1000 +
			0.0020*math.Sin(float64(i)/9) +
			0.0005*math.Cos(float64(i)/23) +
			0.000015*float64(i)

		series["open"][i] = prev
		series["close"][i] = c
		series["high"][i] = math.Max(prev, c) + 0.0004
		series["low"][i] = math.Min(prev, c) - 0.0004
		series["volume"][i] = 1000 + 400*math.Abs(math.Sin(float64(i)/5))
		prev = c
	}

	logging.Debug(subsystem, "synthesized %d %s bars for %s", bars, period, instrument)
	return newFeed(instrument, period, times, series)
}
