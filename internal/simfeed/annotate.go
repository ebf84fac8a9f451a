package simfeed

import (
	"algotest/internal/report"
	"algotest/pkg/logging"
)

// LogAnnotator satisfies the engine's annotation boundary for headless
// hosts: instead of drawing on a chart it writes each annotation to the
// diagnostic log.
type LogAnnotator struct{}

// AnnotateResult logs one unit outcome at its bar position.
func (LogAnnotator) AnnotateResult(res report.Result) {
	logging.Info(subsystem, "annotate bar %d: %s %s (%s)", res.BarIndex, res.Status.Symbol(), res.FullName(), res.Status)
}

// AnnotateSummary logs the run verdict.
func (LogAnnotator) AnnotateSummary(summary *report.RunSummary) {
	stats := summary.Stats()
	logging.Info(subsystem, "annotate summary at bar %d: %d/%d passed (%.1f%%)", summary.BarIndex, stats.Passed, stats.Total, stats.SuccessRate)
}
