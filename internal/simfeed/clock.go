package simfeed

import (
	"context"
	"time"
)

// Clock replays a feed bar by bar, invoking a handler after each advance.
// It drives the same handler a live host would call on every new bar.
type Clock struct {
	feed  *Feed
	delay time.Duration
}

// NewClock wraps a feed. A non-zero delay paces playback; zero replays as
// fast as the handler allows.
func NewClock(feed *Feed, delay time.Duration) *Clock {
	return &Clock{feed: feed, delay: delay}
}

// Play rewinds the feed and replays every bar, calling onBar with the new
// bar index after each advance. It stops early when ctx is done and
// returns the context's error; a complete replay returns nil.
func (c *Clock) Play(ctx context.Context, onBar func(barIndex int)) error {
	c.feed.Rewind()
	for c.feed.Advance() {
		onBar(c.feed.BarIndex())

		if c.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.delay):
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
