package smoke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algotest/internal/engine"
	"algotest/internal/simfeed"
	"algotest/pkg/market"
	"algotest/pkg/registry"
)

func findSuite(t *testing.T, name string) *registry.Suite {
	t.Helper()
	for _, s := range registry.Default.Suites() {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("suite %s not registered", name)
	return nil
}

func TestSuiteSelfRegisters(t *testing.T) {
	s := findSuite(t, "HostSanity")

	assert.Equal(t, "smoke", s.Namespace)
	assert.Equal(t, -10, s.Priority, "sanity checks run before everything else")
	assert.Len(t, s.Units, 5)

	skipped := 0
	for _, u := range s.Units {
		if u.Skip != "" {
			skipped++
		}
	}
	assert.Equal(t, 1, skipped)
}

func TestRunsCleanOnSyntheticHost(t *testing.T) {
	feed := simfeed.Synthetic("EURUSD", market.PeriodM5, 50)

	summary := engine.New(registry.Default, feed, engine.Options{}).RunAll()

	stats := summary.Stats()
	require.Equal(t, 5, stats.Total)
	assert.Equal(t, 4, stats.Passed)
	assert.Equal(t, 1, stats.Skipped)
	assert.Zero(t, stats.Failed)
	assert.InDelta(t, 80.0, stats.SuccessRate, 0.001)
}
