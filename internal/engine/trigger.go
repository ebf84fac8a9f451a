package engine

import "algotest/internal/report"

// Trigger decides when the host's bar clock should start a run.
type Trigger struct {
	// StartBar is the first bar index at which a run may happen. Bars
	// before it are ignored so indicators with warmup periods have data.
	StartBar int

	// EveryTick reruns the plan on every bar at or past StartBar. When
	// false the controller runs exactly once.
	EveryTick bool
}

// Controller wires an engine to a bar clock. The host calls OnBar once per
// bar event; the controller applies the trigger and starts at most one run
// per event.
type Controller struct {
	engine  *Engine
	trigger Trigger
	ran     bool
	last    *report.RunSummary
}

// NewController creates a controller around an engine.
func NewController(e *Engine, trigger Trigger) *Controller {
	return &Controller{engine: e, trigger: trigger}
}

// OnBar is the bar event handler. It returns the summary of the run it
// started, or nil when the trigger held it back.
func (c *Controller) OnBar() *report.RunSummary {
	if c.engine.env.BarIndex() < c.trigger.StartBar {
		return nil
	}
	if c.ran && !c.trigger.EveryTick {
		return nil
	}
	c.ran = true
	c.last = c.engine.RunAll()
	return c.last
}

// Last returns the most recent run summary, or nil before the first run.
func (c *Controller) Last() *report.RunSummary {
	return c.last
}
