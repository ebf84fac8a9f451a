package simfeed

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algotest/pkg/market"
)

func TestSynthetic_Deterministic(t *testing.T) {
	a := Synthetic("EURUSD", market.PeriodM5, 100)
	b := Synthetic("EURUSD", market.PeriodM5, 100)

	require.Equal(t, 100, a.Bars())
	closeA, ok := a.Series("close")
	require.True(t, ok)
	closeB, _ := b.Series("close")

	for i := 0; i < a.Bars(); i++ {
		assert.Equal(t, closeA.At(i), closeB.At(i))
		assert.Equal(t, a.BarTime(i), b.BarTime(i))
	}
}

func TestSynthetic_Shape(t *testing.T) {
	f := Synthetic("GBPUSD", market.PeriodH1, 0)

	assert.Equal(t, DefaultSyntheticBars, f.Bars())
	assert.Equal(t, "GBPUSD", f.Instrument())
	assert.Equal(t, market.PeriodH1, f.Period())
	assert.Equal(t, f.Bars()-1, f.BarIndex())
	assert.Equal(t, []string{"close", "high", "low", "open", "volume"}, f.SeriesNames())

	open, _ := f.Series("open")
	high, _ := f.Series("high")
	low, _ := f.Series("low")
	cls, _ := f.Series("close")
	vol, _ := f.Series("volume")

	for i := 0; i < f.Bars(); i++ {
		if i > 0 {
			assert.Equal(t, time.Hour, f.BarTime(i).Sub(f.BarTime(i-1)), "bar %d spacing", i)
		}
		assert.LessOrEqual(t, low.At(i), open.At(i), "bar %d low above open", i)
		assert.LessOrEqual(t, low.At(i), cls.At(i), "bar %d low above close", i)
		assert.GreaterOrEqual(t, high.At(i), open.At(i), "bar %d high below open", i)
		assert.GreaterOrEqual(t, high.At(i), cls.At(i), "bar %d high below close", i)
		assert.Positive(t, vol.At(i), "bar %d volume", i)
	}
}

func TestFeed_CursorSemantics(t *testing.T) {
	f := Synthetic("EURUSD", market.PeriodM5, 10)

	require.Equal(t, 9, f.BarIndex(), "a fresh feed sits at its last bar")

	f.Rewind()
	assert.Equal(t, -1, f.BarIndex())
	cls, ok := f.Series("close")
	require.True(t, ok)
	assert.Equal(t, 0, cls.Len(), "nothing revealed before the first bar")

	require.True(t, f.Advance())
	assert.Equal(t, 0, f.BarIndex())
	cls, _ = f.Series("close")
	assert.Equal(t, 1, cls.Len())

	require.True(t, f.Seek(7))
	assert.Equal(t, 7, f.BarIndex())
	cls, _ = f.Series("close")
	assert.Equal(t, 8, cls.Len())

	assert.False(t, f.Seek(10))
	assert.False(t, f.Seek(-2))
	assert.Equal(t, 7, f.BarIndex(), "failed seek must not move the cursor")

	require.True(t, f.Seek(9))
	assert.False(t, f.Advance(), "advance past the end")

	_, ok = f.Series("spread")
	assert.False(t, ok)
}

const sampleBars = `
instrument: USDJPY
period: m15
bars:
  - time: 2025-06-02T09:00:00Z
    open: 142.10
    high: 142.35
    low: 142.05
    close: 142.30
    volume: 1800
  - time: 2025-06-02T09:15:00Z
    open: 142.30
    high: 142.55
    low: 142.20
    close: 142.50
    volume: 2100
  - time: 2025-06-02T09:30:00Z
    open: 142.50
    high: 142.60
    low: 142.15
    close: 142.20
    volume: 1650
`

func writeBarFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFromFile(t *testing.T) {
	f, err := FromFile(writeBarFile(t, sampleBars))
	require.NoError(t, err)

	assert.Equal(t, "USDJPY", f.Instrument())
	assert.Equal(t, market.PeriodM15, f.Period())
	require.Equal(t, 3, f.Bars())
	assert.Equal(t, 2, f.BarIndex())
	assert.Equal(t, time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC), f.BarTime(1))

	cls, ok := f.Series("close")
	require.True(t, ok)
	assert.Equal(t, 142.50, cls.At(1))
	assert.Equal(t, 142.20, cls.Last())

	vol, ok := f.Series("volume")
	require.True(t, ok)
	assert.Equal(t, 1800.0, vol.At(0))
}

func TestFromFile_DefaultsInstrumentAndPeriod(t *testing.T) {
	f, err := FromFile(writeBarFile(t, `
bars:
  - time: 2025-06-02T09:00:00Z
    close: 1.1
`))
	require.NoError(t, err)
	assert.Equal(t, "EURUSD", f.Instrument())
	assert.Equal(t, market.PeriodM5, f.Period())
}

func TestFromFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no bars",
			content: "instrument: EURUSD\nbars: []\n",
			wantErr: "contains no bars",
		},
		{
			name:    "unknown period",
			content: "period: weekly\nbars:\n  - time: 2025-06-02T09:00:00Z\n",
			wantErr: "unknown period",
		},
		{
			name: "timestamps out of order",
			content: `
bars:
  - time: 2025-06-02T09:15:00Z
    close: 1.1
  - time: 2025-06-02T09:00:00Z
    close: 1.2
`,
			wantErr: "is not after bar 0",
		},
		{
			name:    "malformed yaml",
			content: "bars: [unclosed\n",
			wantErr: "failed to parse bar data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromFile(writeBarFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read bar data")
	})
}

func TestClock_Play(t *testing.T) {
	f := Synthetic("EURUSD", market.PeriodM5, 5)

	var seen []int
	err := NewClock(f, 0).Play(context.Background(), func(barIndex int) {
		seen = append(seen, barIndex)
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, 4, f.BarIndex(), "feed rests at the last bar after playback")
}

func TestClock_PlayStopsOnCancel(t *testing.T) {
	f := Synthetic("EURUSD", market.PeriodM5, 50)
	ctx, cancel := context.WithCancel(context.Background())

	var seen []int
	err := NewClock(f, 0).Play(ctx, func(barIndex int) {
		seen = append(seen, barIndex)
		if barIndex == 2 {
			cancel()
		}
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, seen, 3)
}
