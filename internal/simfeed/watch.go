package simfeed

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"algotest/pkg/logging"
)

// Watcher observes a bar data file and fires a callback when it changes,
// debouncing rapid successive writes into one notification. Editors often
// replace files via rename, so the watch covers the file's directory and
// filters events down to the one path.
type Watcher struct {
	mu sync.Mutex

	// path is the bar data file being observed
	path string

	// debounceInterval is how long to wait for additional changes
	debounceInterval time.Duration

	// watcher is the fsnotify watcher instance
	watcher *fsnotify.Watcher

	// timer tracks the pending debounced notification
	timer *time.Timer

	// stopCh signals shutdown
	stopCh chan struct{}

	// running indicates if the watcher is active
	running bool
}

// NewWatcher creates a watcher for one bar data file.
func NewWatcher(path string, debounceInterval time.Duration) *Watcher {
	if debounceInterval == 0 {
		debounceInterval = 500 * time.Millisecond
	}

	return &Watcher{
		path:             filepath.Clean(path),
		debounceInterval: debounceInterval,
		stopCh:           make(chan struct{}),
	}
}

// Start begins watching. onChange runs on the watcher's goroutine after
// each debounced change until ctx ends or Stop is called.
func (w *Watcher) Start(ctx context.Context, onChange func()) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Unlock()
		watcher.Close()
		return err
	}

	w.watcher = watcher
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	go w.processEvents(ctx, onChange)

	logging.Info(subsystem, "watching %s for bar data changes", w.path)
	return nil
}

// processEvents handles filesystem events until shutdown.
func (w *Watcher) processEvents(ctx context.Context, onChange func()) {
	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return

		case <-w.stopCh:
			w.cancelPending()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFsEvent(event, onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error(subsystem, err, "bar data watcher error")
		}
	}
}

// handleFsEvent filters events down to the watched file and debounces.
func (w *Watcher) handleFsEvent(event fsnotify.Event, onChange func()) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceInterval, func() {
		logging.Debug(subsystem, "bar data changed: %s", w.path)
		onChange()
	})
}

// cancelPending stops any debounce timer still armed.
func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// Stop gracefully stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.stopCh)

	if w.watcher != nil {
		if err := w.watcher.Close(); err != nil {
			logging.Error(subsystem, err, "error closing bar data watcher")
		}
		w.watcher = nil
	}
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	logging.Info(subsystem, "stopped watching %s", w.path)
	return nil
}
