package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEmpty(t *testing.T) {
	stats := Compute(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.SuccessRate)
	assert.Equal(t, time.Duration(0), stats.MinDuration)
	assert.Equal(t, time.Duration(0), stats.AvgDuration)
	assert.Equal(t, time.Duration(0), stats.MaxDuration)
}

func TestComputeSuccessRate(t *testing.T) {
	results := []Result{
		{Status: StatusPassed},
		{Status: StatusPassed},
		{Status: StatusPassed},
		{Status: StatusFailed},
	}

	stats := Compute(results)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Passed)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 75.0, stats.SuccessRate)
}

func TestComputeCountsEveryStatus(t *testing.T) {
	results := []Result{
		{Status: StatusPassed},
		{Status: StatusFailed},
		{Status: StatusSkipped},
		{Status: StatusInconclusive},
		{Status: StatusTimedOut},
		{Status: StatusErrored},
	}

	stats := Compute(results)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.Passed)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 1, stats.Inconclusive)
	assert.Equal(t, 1, stats.TimedOut)
	assert.Equal(t, 1, stats.Errored)
}

func TestComputeDurationsIncludeSkipped(t *testing.T) {
	results := []Result{
		{Status: StatusPassed, Duration: 30 * time.Millisecond},
		{Status: StatusPassed, Duration: 10 * time.Millisecond},
		{Status: StatusSkipped}, // zero duration pulls the minimum down
	}

	stats := Compute(results)
	assert.Equal(t, time.Duration(0), stats.MinDuration)
	assert.Equal(t, 30*time.Millisecond, stats.MaxDuration)
	assert.Equal(t, 40*time.Millisecond, stats.TotalDuration)
	assert.Equal(t, 40*time.Millisecond/3, stats.AvgDuration)
}

func TestGroupBySuitePreservesOrder(t *testing.T) {
	results := []Result{
		{Suite: "Momentum", Unit: "a"},
		{Suite: "Momentum", Unit: "b"},
		{Suite: "Atr", Unit: "c"},
		{Suite: "EmaCross", Unit: "d"},
	}

	groups := GroupBySuite(results)
	require.Len(t, groups, 3)
	assert.Equal(t, "Momentum", groups[0].Suite)
	assert.Len(t, groups[0].Results, 2)
	assert.Equal(t, "Atr", groups[1].Suite)
	assert.Equal(t, "EmaCross", groups[2].Suite)
}

func TestRunSummaryOk(t *testing.T) {
	ok := &RunSummary{Results: []Result{{Status: StatusPassed}, {Status: StatusSkipped}}}
	assert.True(t, ok.Ok())

	failed := &RunSummary{Results: []Result{{Status: StatusPassed}, {Status: StatusFailed}}}
	assert.False(t, failed.Ok())

	timedOut := &RunSummary{Results: []Result{{Status: StatusTimedOut}}}
	assert.False(t, timedOut.Ok())

	empty := &RunSummary{}
	assert.True(t, empty.Ok())
}

func TestStatusClassification(t *testing.T) {
	assert.True(t, StatusPassed.Terminal())
	assert.True(t, StatusTimedOut.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusRunning.Terminal())

	assert.True(t, StatusFailed.Bad())
	assert.True(t, StatusErrored.Bad())
	assert.True(t, StatusTimedOut.Bad())
	assert.False(t, StatusSkipped.Bad())
	assert.False(t, StatusInconclusive.Bad())
}

func TestResultFullName(t *testing.T) {
	r := Result{Suite: "EmaCross", Unit: "ConvergesToPrice"}
	assert.Equal(t, "EmaCross.ConvergesToPrice", r.FullName())
}
