package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algotest/internal/engine"
	"algotest/internal/report"
	"algotest/internal/simfeed"
	"algotest/pkg/market"
	"algotest/pkg/registry"
)

func TestSMA(t *testing.T) {
	s := market.SliceSeries{1, 2, 3, 4, 5}

	assert.InDelta(t, 3.0, sma(s, 5), 1e-9)
	assert.InDelta(t, 4.5, sma(s, 2), 1e-9)
	assert.InDelta(t, 5.0, sma(s, 1), 1e-9)
}

func TestWindowBounds(t *testing.T) {
	s := market.SliceSeries{5, 1, 9, 3}

	lo, hi := windowBounds(s, 4)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 9.0, hi)

	lo, hi = windowBounds(s, 2)
	assert.Equal(t, 3.0, lo)
	assert.Equal(t, 9.0, hi)
}

func TestEMASeries(t *testing.T) {
	flat := []float64{1.25, 1.25, 1.25}
	for _, v := range emaSeries(flat, 5) {
		assert.InDelta(t, 1.25, v, 1e-9)
	}

	values := []float64{1, 2, 3}
	assert.Equal(t, values, emaSeries(values, 1), "window one reproduces the input")
	assert.Equal(t, 1.0, emaSeries(values, 10)[0], "seeded at the first value")

	// window 3 gives alpha 0.5
	out := emaSeries([]float64{2, 4}, 3)
	assert.InDelta(t, 3.0, out[1], 1e-9)
}

func TestCrossIndex(t *testing.T) {
	assert.Equal(t, 2, crossIndex([]float64{1, 2, 3, 4}, []float64{2.5, 2.5, 2.5, 2.5}))
	assert.Equal(t, -1, crossIndex([]float64{2, 3, 4}, []float64{1, 2, 3}), "always above is not a cross")
	assert.Equal(t, -1, crossIndex([]float64{1, 1}, []float64{2, 2}))

	assert.PanicsWithValue(t, "crossover: series length mismatch", func() {
		crossIndex([]float64{1}, []float64{1, 2})
	})
}

func TestSuitesSelfRegister(t *testing.T) {
	names := map[string]*registry.Suite{}
	for _, s := range registry.Default.Suites() {
		names[s.Name] = s
	}

	for _, want := range []string{"SMA", "EMA", "Crossover"} {
		s, ok := names[want]
		require.True(t, ok, "suite %s not registered", want)
		assert.Equal(t, "indicators", s.Namespace)
	}
	assert.NotNil(t, names["EMA"].UnitsFunc, "EMA enumerates window units dynamically")
}

func TestSuitesPassOnSyntheticHost(t *testing.T) {
	feed := simfeed.Synthetic("EURUSD", market.PeriodM5, 100)

	summary := engine.New(registry.Default, feed, engine.Options{}).RunAll()

	stats := summary.Stats()
	require.Equal(t, 13, stats.Total, "4 SMA + 6 EMA + 3 Crossover units")
	assert.Equal(t, 13, stats.Passed, "transcript:\n%s", summaryTranscript(summary))
	assert.InDelta(t, 100.0, stats.SuccessRate, 0.001)
}

func summaryTranscript(s *report.RunSummary) string {
	out := ""
	for _, line := range s.Transcript {
		out += line + "\n"
	}
	return out
}
