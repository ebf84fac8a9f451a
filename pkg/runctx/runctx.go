package runctx

import (
	"context"
	"sync"
	"time"

	"algotest/pkg/market"
)

// Context is the shared execution context of a run. The engine creates one
// per run and hands it to every unit, resetting it before each so scratch
// state never leaks between units.
type Context struct {
	env market.Environment

	mu        sync.RWMutex
	scratch   map[string]interface{}
	startedAt time.Time

	std    context.Context
	cancel context.CancelFunc
}

// New creates a run context bound to the given host environment.
func New(env market.Environment) *Context {
	c := &Context{
		env:     env,
		scratch: make(map[string]interface{}),
		std:     context.Background(),
	}
	c.startedAt = time.Now()
	return c
}

// Reset prepares the context for the next unit: the scratch map is cleared
// and the start timestamp refreshed.
func (c *Context) Reset() {
	c.ResetWithTimeout(0)
}

// ResetWithTimeout is Reset plus a cooperative deadline: when timeout > 0
// the context returned by Std is cancelled once the unit's budget elapses,
// so long-running bodies can bail out early. The engine still measures the
// unit's real duration regardless.
func (c *Context) ResetWithTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.scratch = make(map[string]interface{})
	c.startedAt = time.Now()

	if timeout > 0 {
		c.std, c.cancel = context.WithTimeout(context.Background(), timeout)
	} else {
		c.std = context.Background()
	}
}

// Close releases the deadline timer, if any. The engine calls it once the
// run finishes.
func (c *Context) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Set stores a value in the scratch map under key.
func (c *Context) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scratch[key] = value
}

// Contains reports whether key is present in the scratch map.
func (c *Context) Contains(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.scratch[key]
	return ok
}

// Value returns the raw scratch value for key, or nil when absent.
func (c *Context) Value(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scratch[key]
}

// Get returns the scratch value for key typed as T. A missing key or a
// value of a different type yields the zero value, never a fault.
func Get[T any](c *Context, key string) T {
	c.mu.RLock()
	v, ok := c.scratch[key]
	c.mu.RUnlock()
	if !ok {
		var zero T
		return zero
	}
	typed, ok := v.(T)
	if !ok {
		var zero T
		return zero
	}
	return typed
}

// StartedAt returns the timestamp of the last Reset.
func (c *Context) StartedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.startedAt
}

// Elapsed returns the time spent since the last Reset.
func (c *Context) Elapsed() time.Duration {
	return time.Since(c.StartedAt())
}

// Std returns a standard context carrying the current unit's deadline, for
// handing to blocking calls inside unit bodies.
func (c *Context) Std() context.Context {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.std
}

// Env returns the read-only host environment.
func (c *Context) Env() market.Environment { return c.env }

// BarIndex returns the host's current position.
func (c *Context) BarIndex() int { return c.env.BarIndex() }

// BarTime returns the timestamp of the host's current bar.
func (c *Context) BarTime() time.Time { return c.env.BarTime(c.env.BarIndex()) }

// Instrument returns the host's symbol.
func (c *Context) Instrument() string { return c.env.Instrument() }

// Period returns the host's timeframe.
func (c *Context) Period() market.Period { return c.env.Period() }

// Series looks up a named host data series.
func (c *Context) Series(name string) (market.Series, bool) { return c.env.Series(name) }
