package runctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algotest/pkg/market"
)

// stubEnv is a minimal market.Environment for context tests.
type stubEnv struct {
	bar    int
	times  []time.Time
	series map[string]market.Series
}

func (e *stubEnv) Instrument() string                       { return "EURUSD" }
func (e *stubEnv) Period() market.Period                    { return market.PeriodM5 }
func (e *stubEnv) BarIndex() int                            { return e.bar }
func (e *stubEnv) Bars() int                                { return e.bar + 1 }
func (e *stubEnv) BarTime(i int) time.Time                  { return e.times[i] }
func (e *stubEnv) Series(name string) (market.Series, bool) { s, ok := e.series[name]; return s, ok }
func (e *stubEnv) SeriesNames() []string                    { return []string{"close"} }

func newStubEnv() *stubEnv {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &stubEnv{
		bar:    2,
		times:  []time.Time{base, base.Add(5 * time.Minute), base.Add(10 * time.Minute)},
		series: map[string]market.Series{"close": market.SliceSeries{1.1, 1.2, 1.3}},
	}
}

func TestScratchRoundTrip(t *testing.T) {
	c := New(newStubEnv())

	c.Set("fast", 12.5)
	c.Set("label", "golden cross")

	assert.True(t, c.Contains("fast"))
	assert.Equal(t, 12.5, c.Value("fast"))
	assert.Equal(t, 12.5, Get[float64](c, "fast"))
	assert.Equal(t, "golden cross", Get[string](c, "label"))
}

func TestGetSoftMiss(t *testing.T) {
	c := New(newStubEnv())

	// missing key
	assert.Equal(t, 0.0, Get[float64](c, "absent"))
	assert.Equal(t, "", Get[string](c, "absent"))
	assert.Nil(t, Get[[]int](c, "absent"))

	// present but wrong type
	c.Set("fast", "not a float")
	assert.Equal(t, 0.0, Get[float64](c, "fast"))

	// raw access stays nil for missing keys
	assert.Nil(t, c.Value("absent"))
	assert.False(t, c.Contains("absent"))
}

func TestResetClearsScratchAndRefreshesClock(t *testing.T) {
	c := New(newStubEnv())

	c.Set("leftover", 1)
	first := c.StartedAt()

	time.Sleep(5 * time.Millisecond)
	c.Reset()

	assert.False(t, c.Contains("leftover"), "scratch must not survive a reset")
	assert.True(t, c.StartedAt().After(first), "start timestamp must be refreshed")
	assert.GreaterOrEqual(t, c.Elapsed(), time.Duration(0))
}

func TestResetWithTimeoutArmsDeadline(t *testing.T) {
	c := New(newStubEnv())
	defer c.Close()

	c.ResetWithTimeout(30 * time.Millisecond)

	deadline, ok := c.Std().Deadline()
	require.True(t, ok, "expected a deadline on the unit context")
	assert.WithinDuration(t, time.Now().Add(30*time.Millisecond), deadline, 20*time.Millisecond)

	select {
	case <-c.Std().Done():
	case <-time.After(500 * time.Millisecond):
		t.Fatal("unit context never expired")
	}
}

func TestResetWithoutTimeoutHasNoDeadline(t *testing.T) {
	c := New(newStubEnv())
	c.Reset()

	_, ok := c.Std().Deadline()
	assert.False(t, ok)
}

func TestHostAccessors(t *testing.T) {
	env := newStubEnv()
	c := New(env)

	assert.Equal(t, "EURUSD", c.Instrument())
	assert.Equal(t, market.PeriodM5, c.Period())
	assert.Equal(t, 2, c.BarIndex())
	assert.Equal(t, env.times[2], c.BarTime())

	closes, ok := c.Series("close")
	require.True(t, ok)
	assert.Equal(t, 3, closes.Len())
	assert.Equal(t, 1.3, closes.Last())

	_, ok = c.Series("vwap")
	assert.False(t, ok)
}
