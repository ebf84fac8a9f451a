package engine

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"

	"algotest/internal/discovery"
	"algotest/internal/report"
	"algotest/pkg/assert"
	"algotest/pkg/logging"
	"algotest/pkg/market"
	"algotest/pkg/registry"
	"algotest/pkg/runctx"
)

const subsystem = "Engine"

// stackHeadLines bounds how much of a fault's stack trace a result keeps.
const stackHeadLines = 10

// Annotator receives results as they are produced, for hosts that render
// onto a visual surface. The engine only defines the boundary; rendering
// lives with the host.
type Annotator interface {
	AnnotateResult(report.Result)
	AnnotateSummary(*report.RunSummary)
}

// Options configure an Engine for the lifetime of its host attachment.
type Options struct {
	// Filter narrows discovery, see discovery.Filter.
	Filter discovery.Filter

	// Logging attaches the live output sink. The transcript is captured
	// either way.
	Logging bool

	// Out is where live output goes when Logging is set.
	Out io.Writer

	// Verbose adds expected-outcome notes and fault traces to the output.
	Verbose bool

	// FailFast stops the run after the first failed, errored or timed-out
	// unit.
	FailFast bool

	// DefaultTimeout applies to units that declare none. Zero disables it.
	DefaultTimeout time.Duration

	// Annotate forwards results to the Annotator, when one is wired.
	Annotate  bool
	Annotator Annotator
}

// Engine executes the discovered plan against a host environment, strictly
// sequentially: one unit at a time on a single goroutine, suites in plan
// order.
type Engine struct {
	reg  *registry.Registry
	env  market.Environment
	opts Options
}

// New creates an engine over a registry and a host environment.
func New(reg *registry.Registry, env market.Environment, opts Options) *Engine {
	return &Engine{reg: reg, env: env, opts: opts}
}

// RunAll discovers and executes everything, returning the run summary. A
// plan with zero units is not an error: the summary comes back valid with
// all-zero stats and the output says no tests were found.
func (e *Engine) RunAll() *report.RunSummary {
	capture := report.NewCaptureSink()
	sink := report.MultiSink{capture}
	if e.opts.Logging && e.opts.Out != nil {
		sink = append(sink, report.NewWriterSink(e.opts.Out))
	}
	rep := report.NewReporter(sink, e.opts.Verbose)

	plan := discovery.Discover(e.reg, e.env, e.opts.Filter)

	summary := &report.RunSummary{
		RunID:      uuid.New().String(),
		Instrument: e.env.Instrument(),
		Period:     string(e.env.Period()),
		BarIndex:   e.env.BarIndex(),
		Started:    time.Now(),
	}

	logging.Info(subsystem, "run %s: %d units across %d suites", summary.RunID, plan.TotalUnits, len(plan.Suites))
	rep.RunStarted(summary.Instrument, summary.Period, summary.BarIndex, len(plan.Suites), plan.TotalUnits)

	tc := runctx.New(e.env)
	defer tc.Close()

	for _, sp := range plan.Suites {
		if !e.runSuite(sp, tc, rep, summary) {
			logging.Info(subsystem, "run %s stopped early (fail-fast)", summary.RunID)
			break
		}
	}

	summary.Finished = time.Now()
	rep.RunFinished(summary)

	if e.opts.Annotate && e.opts.Annotator != nil {
		e.opts.Annotator.AnnotateSummary(summary)
	}

	// capture last so the transcript includes the closing block
	summary.Transcript = capture.Lines()
	return summary
}

// runSuite executes one planned suite. The returned bool is false when
// fail-fast should stop the whole run.
func (e *Engine) runSuite(sp discovery.SuitePlan, tc *runctx.Context, rep *report.Reporter, summary *report.RunSummary) bool {
	s := sp.Suite

	if sp.GateReason != "" {
		rep.SuiteGated(s.Name, sp.GateReason)
		for _, u := range sp.Units {
			res := e.newResult(s.Name, u.Name, u.Expected)
			res.Status = report.StatusSkipped
			res.Message = sp.GateReason
			e.emit(res, rep, summary)
		}
		return true
	}

	rep.SuiteStarted(s.Name, len(sp.Units))

	var fx registry.Fixture
	if s.New != nil {
		built, err := construct(s.New)
		if err != nil {
			res := e.newResult(s.Name, "New", "")
			res.Status = report.StatusFailed
			res.Message = fmt.Sprintf("constructor failed: %v", err)
			e.emit(res, rep, summary)
			return !e.opts.FailFast
		}
		fx = built
	}

	if ca, ok := fx.(registry.ContextAware); ok {
		ca.SetContext(tc)
	}

	setupErr := error(nil)
	if init, ok := fx.(registry.Initializer); ok {
		setupErr = guard("setup", init.SetUp)
	}

	ok := true
	if setupErr != nil {
		// a broken class setup fails every unit of the suite
		for _, u := range sp.Units {
			res := e.newResult(s.Name, u.Name, u.Expected)
			res.Status = report.StatusFailed
			res.Message = fmt.Sprintf("class setup failed: %v", setupErr)
			e.emit(res, rep, summary)
		}
		ok = !e.opts.FailFast
	} else {
		for _, u := range sp.Units {
			res := e.runUnit(s, u, fx, tc)
			e.emit(res, rep, summary)
			if e.opts.FailFast && res.Status.Bad() {
				ok = false
				break
			}
		}
	}

	if fin, isFin := fx.(registry.Finisher); isFin {
		if err := guard("teardown", fin.TearDown); err != nil {
			res := e.newResult(s.Name, "TearDown", "")
			res.Status = report.StatusFailed
			res.Message = fmt.Sprintf("teardown failed: %v", err)
			e.emit(res, rep, summary)
			if e.opts.FailFast {
				ok = false
			}
		}
	}

	return ok
}

// runUnit takes one unit through its lifecycle: Pending, then either
// Skipped outright or Running inside the fault boundary, then exactly one
// terminal status. The timeout check runs last and overrides whatever the
// body produced.
func (e *Engine) runUnit(s *registry.Suite, u registry.Unit, fx registry.Fixture, tc *runctx.Context) report.Result {
	res := e.newResult(s.Name, u.Name, u.Expected)

	if u.Skip != "" {
		res.Status = report.StatusSkipped
		res.Message = u.Skip
		return res
	}
	if u.Run == nil {
		res.Status = report.StatusErrored
		res.Message = "unit has no body"
		return res
	}

	res.Status = report.StatusRunning
	logging.Debug(subsystem, "running %s.%s", s.Name, u.Name)

	timeout := u.Timeout
	if timeout == 0 {
		timeout = e.opts.DefaultTimeout
	}

	tc.ResetWithTimeout(timeout)
	started := time.Now()
	fault, trace := invoke(u.Run, fx, tc)
	res.Started = started
	res.Duration = time.Since(started)

	switch f := fault.(type) {
	case nil:
		res.Status = report.StatusPassed
	case *assert.Failure:
		res.Status = report.StatusFailed
		res.Message = f.Message
	case *assert.Halt:
		res.Status = report.StatusInconclusive
		res.Message = f.Message
	default:
		res.Status = report.StatusFailed
		res.Message = fmt.Sprintf("unexpected fault: %T — %v", fault, fault)
		res.Trace = trace
	}

	if timeout > 0 && res.Duration > timeout {
		res.Status = report.StatusTimedOut
	}
	return res
}

func (e *Engine) newResult(suite, unit, expected string) report.Result {
	res := report.Result{
		Suite:      suite,
		Unit:       unit,
		Status:     report.StatusPending,
		Expected:   expected,
		Started:    time.Now(),
		Instrument: e.env.Instrument(),
		Period:     string(e.env.Period()),
		BarIndex:   e.env.BarIndex(),
	}
	if res.BarIndex >= 0 {
		res.BarTime = e.env.BarTime(res.BarIndex)
	}
	return res
}

func (e *Engine) emit(res report.Result, rep *report.Reporter, summary *report.RunSummary) {
	summary.Results = append(summary.Results, res)
	rep.UnitFinished(res)
	if e.opts.Annotate && e.opts.Annotator != nil {
		e.opts.Annotator.AnnotateResult(res)
	}
}

// invoke runs a unit body inside the fault boundary. A clean return yields
// (nil, ""); anything recovered comes back with the head of its stack.
func invoke(run func(registry.Fixture, *runctx.Context), fx registry.Fixture, tc *runctx.Context) (fault interface{}, trace string) {
	defer func() {
		if r := recover(); r != nil {
			fault = r
			trace = stackHead(debug.Stack(), stackHeadLines)
		}
	}()
	run(fx, tc)
	return nil, ""
}

// construct builds a fixture, converting a constructor panic into an error.
func construct(newFn func() (registry.Fixture, error)) (fx registry.Fixture, err error) {
	defer func() {
		if r := recover(); r != nil {
			fx = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	return newFn()
}

// guard runs a fixture hook, folding panics and errors into one error.
func guard(stage string, hook func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s fault: %v", stage, r)
		}
	}()
	return hook()
}

// stackHead trims a debug.Stack dump to its first maxLines lines.
func stackHead(stack []byte, maxLines int) string {
	lines := strings.Split(strings.TrimSpace(string(stack)), "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
