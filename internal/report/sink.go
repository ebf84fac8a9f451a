package report

import (
	"fmt"
	"io"
	"sync"
)

// Sink receives the framework's output one line at a time. It is the only
// outward surface of the report layer; everything a run prints flows
// through one.
type Sink interface {
	WriteLine(line string)
}

// WriterSink adapts an io.Writer to the Sink interface.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink { return &WriterSink{w: w} }

func (s *WriterSink) WriteLine(line string) {
	fmt.Fprintln(s.w, line)
}

// CaptureSink records every line in order, for export on the run summary.
type CaptureSink struct {
	mu    sync.Mutex
	lines []string
}

func NewCaptureSink() *CaptureSink { return &CaptureSink{} }

func (s *CaptureSink) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of everything captured so far.
func (s *CaptureSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// MultiSink fans each line out to every member.
type MultiSink []Sink

func (m MultiSink) WriteLine(line string) {
	for _, s := range m {
		s.WriteLine(line)
	}
}
