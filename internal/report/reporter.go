package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	pkgstrings "algotest/pkg/strings"
)

// Reporter renders run progress and the final summary as lines on a Sink.
// It never touches stdio directly, so the same reporter serves the CLI, a
// silent capture-only run, or both through a MultiSink.
type Reporter struct {
	sink    Sink
	verbose bool
}

func NewReporter(sink Sink, verbose bool) *Reporter {
	return &Reporter{sink: sink, verbose: verbose}
}

func (r *Reporter) line(format string, args ...interface{}) {
	r.sink.WriteLine(fmt.Sprintf(format, args...))
}

// RunStarted announces the run before the first unit executes, so callers
// see the discovered plan up front.
func (r *Reporter) RunStarted(instrument string, period string, barIndex int, suites, units int) {
	r.line("🧪 Starting algotest run")
	r.line("📍 %s %s @ bar %d", instrument, period, barIndex)
	r.line("🔍 Discovered %d units across %d suites", units, suites)
	r.line("")
}

// NoTestsFound marks an empty plan. The run still produces a valid,
// all-zero summary.
func (r *Reporter) NoTestsFound() {
	r.line("⚠️  No tests found")
}

// SuiteStarted announces a suite about to execute.
func (r *Reporter) SuiteStarted(name string, units int) {
	r.line("🎯 Suite: %s (%d units)", name, units)
}

// SuiteGated explains why a gated suite contributes skipped units instead
// of running.
func (r *Reporter) SuiteGated(name, reason string) {
	r.line("⏭️  Suite %s gated: %s", name, reason)
}

// UnitFinished prints one result line, plus detail lines for anything that
// did not pass. Compact mode flattens the message to one line; verbose mode
// prints it whole.
func (r *Reporter) UnitFinished(res Result) {
	r.line("   %s %s (%s)", res.Status.Symbol(), res.Unit, fmtDuration(res.Duration))

	if res.Status != StatusPassed && res.Message != "" {
		msg := res.Message
		if !r.verbose {
			msg = pkgstrings.TruncateMessage(msg, pkgstrings.DefaultMessageMaxLen)
		}
		r.line("      ❌ %s", msg)
	}
	if r.verbose {
		if res.Expected != "" {
			r.line("      📝 Expected: %s", res.Expected)
		}
		if res.Trace != "" {
			for _, tl := range strings.Split(res.Trace, "\n") {
				r.line("         %s", tl)
			}
		}
	}
}

// RunFinished prints the closing block: counters, success rate, duration
// spread and the per-suite table.
func (r *Reporter) RunFinished(summary *RunSummary) {
	stats := summary.Stats()

	r.line("")
	r.line("🏁 Run complete (%s)", summary.RunID)
	r.line("⏱️  Duration: %s", fmtDuration(summary.Elapsed()))
	r.line("📊 Results:")
	r.line("   ✅ Passed: %d", stats.Passed)
	if stats.Failed > 0 {
		r.line("   ❌ Failed: %d", stats.Failed)
	}
	if stats.TimedOut > 0 {
		r.line("   ⏱️  Timed out: %d", stats.TimedOut)
	}
	if stats.Errored > 0 {
		r.line("   💥 Errored: %d", stats.Errored)
	}
	if stats.Inconclusive > 0 {
		r.line("   🤷 Inconclusive: %d", stats.Inconclusive)
	}
	if stats.Skipped > 0 {
		r.line("   ⏭️  Skipped: %d", stats.Skipped)
	}
	r.line("   📈 Total: %d", stats.Total)
	r.line("   📏 Success Rate: %.1f%%", stats.SuccessRate)
	r.line("   ⏲️  Unit durations: min %s, avg %s, max %s",
		fmtDuration(stats.MinDuration), fmtDuration(stats.AvgDuration), fmtDuration(stats.MaxDuration))

	if stats.Total == 0 {
		r.line("")
		r.NoTestsFound()
		return
	}

	for _, tl := range renderSuiteTable(summary) {
		r.line("%s", tl)
	}

	r.line("")
	if summary.Ok() {
		r.line("🎉 All tests passed!")
	} else {
		r.line("💔 Some tests failed")
	}
}

// renderSuiteTable builds the per-suite breakdown as table lines.
func renderSuiteTable(summary *RunSummary) []string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Suite", "Passed", "Failed", "Skipped", "Other", "Duration"})

	for _, g := range summary.BySuite() {
		gs := Compute(g.Results)
		other := gs.Inconclusive + gs.TimedOut + gs.Errored
		tw.AppendRow(table.Row{
			g.Suite, gs.Passed, gs.Failed, gs.Skipped, other, fmtDuration(gs.TotalDuration),
		})
	}

	return strings.Split(tw.Render(), "\n")
}

// fmtDuration renders durations the way the harness logs read best:
// seconds with two decimals.
func fmtDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
