package report

import (
	"time"
)

// Stats are the aggregate numbers of a run, computed on demand from the
// flat result list and never stored.
type Stats struct {
	Total        int `json:"total"`
	Passed       int `json:"passed"`
	Failed       int `json:"failed"`
	Skipped      int `json:"skipped"`
	Inconclusive int `json:"inconclusive"`
	TimedOut     int `json:"timed_out"`
	Errored      int `json:"errored"`

	// SuccessRate is passed over total in percent, 0 for an empty run.
	SuccessRate float64 `json:"success_rate"`

	// Durations cover every result, skipped units contributing zero.
	MinDuration   time.Duration `json:"min_duration"`
	MaxDuration   time.Duration `json:"max_duration"`
	AvgDuration   time.Duration `json:"avg_duration"`
	TotalDuration time.Duration `json:"total_duration"`
}

// Compute aggregates the results. It is a pure function: calling it twice
// on the same slice yields the same stats.
func Compute(results []Result) Stats {
	s := Stats{Total: len(results)}

	for i, r := range results {
		switch r.Status {
		case StatusPassed:
			s.Passed++
		case StatusFailed:
			s.Failed++
		case StatusSkipped:
			s.Skipped++
		case StatusInconclusive:
			s.Inconclusive++
		case StatusTimedOut:
			s.TimedOut++
		case StatusErrored:
			s.Errored++
		}

		d := r.Duration
		s.TotalDuration += d
		if i == 0 || d < s.MinDuration {
			s.MinDuration = d
		}
		if d > s.MaxDuration {
			s.MaxDuration = d
		}
	}

	if s.Total > 0 {
		s.SuccessRate = float64(s.Passed) / float64(s.Total) * 100
		s.AvgDuration = s.TotalDuration / time.Duration(s.Total)
	}
	return s
}

// SuiteGroup is the slice of one suite's results, in execution order.
type SuiteGroup struct {
	Suite   string   `json:"suite"`
	Results []Result `json:"results"`
}

// GroupBySuite folds the flat result list into per-suite groups, keeping
// the discovery order of suites and the execution order of results.
func GroupBySuite(results []Result) []SuiteGroup {
	index := make(map[string]int)
	var groups []SuiteGroup

	for _, r := range results {
		i, ok := index[r.Suite]
		if !ok {
			i = len(groups)
			index[r.Suite] = i
			groups = append(groups, SuiteGroup{Suite: r.Suite})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	return groups
}

// RunSummary is the object a run returns: identity, host snapshot, the
// ordered results and the captured output transcript. Aggregates are not
// stored; call Stats.
type RunSummary struct {
	RunID      string    `json:"run_id"`
	Instrument string    `json:"instrument"`
	Period     string    `json:"period"`
	BarIndex   int       `json:"bar_index"`
	Started    time.Time `json:"started"`
	Finished   time.Time `json:"finished"`

	Results    []Result `json:"results"`
	Transcript []string `json:"transcript,omitempty"`
}

// Stats computes the aggregate numbers for this run.
func (s *RunSummary) Stats() Stats {
	return Compute(s.Results)
}

// BySuite groups this run's results per suite.
func (s *RunSummary) BySuite() []SuiteGroup {
	return GroupBySuite(s.Results)
}

// Elapsed is the wall-clock span of the run.
func (s *RunSummary) Elapsed() time.Duration {
	return s.Finished.Sub(s.Started)
}

// Ok reports whether the run had no failures, timeouts or errors.
func (s *RunSummary) Ok() bool {
	for _, r := range s.Results {
		if r.Status.Bad() {
			return false
		}
	}
	return true
}
