package simfeed

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string, debounce time.Duration) (*Watcher, *atomic.Int32) {
	t.Helper()
	w := NewWatcher(path, debounce)
	var hits atomic.Int32
	require.NoError(t, w.Start(context.Background(), func() { hits.Add(1) }))
	t.Cleanup(func() { _ = w.Stop() })
	return w, &hits
}

func TestWatcher_FiresOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bars: []\n"), 0644))

	_, hits := startWatcher(t, path, 50*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("bars: [] # touched\n"), 0644))

	require.Eventually(t, func() bool { return hits.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bars: []\n"), 0644))

	_, hits := startWatcher(t, path, 200*time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("bars: []\n"), 0644))
	}

	require.Eventually(t, func() bool { return hits.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), hits.Load(), "burst of writes should coalesce")
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bars: []\n"), 0644))

	_, hits := startWatcher(t, path, 30*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, hits.Load())
}

func TestWatcher_StartAndStopAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bars: []\n"), 0644))

	w := NewWatcher(path, 0)
	require.NoError(t, w.Start(context.Background(), func() {}))
	assert.NoError(t, w.Start(context.Background(), func() {}), "second start is a no-op")

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop(), "second stop is a no-op")
}
