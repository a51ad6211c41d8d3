package sink

import (
	"io"
	"sync/atomic"
)

// WriterSink adapts any io.Writer into a Sink. It is intended for
// caller-supplied destinations registered with owned=false; the writer
// is never closed by the sink.
type WriterSink struct {
	w      io.Writer
	stats  *Stats
	closed atomic.Bool
}

// NewWriterSink wraps w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w, stats: NewStats()}
}

// Open always succeeds
func (s *WriterSink) Open() error {
	s.closed.Store(false)
	return nil
}

// Append writes line to the wrapped writer
func (s *WriterSink) Append(line string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if _, err := io.WriteString(s.w, line); err != nil {
		s.stats.IncrementFailed()
		return err
	}
	s.stats.IncrementAppended()
	return nil
}

// Close marks the sink closed; the wrapped writer is left untouched
func (s *WriterSink) Close() error {
	s.closed.Store(true)
	return nil
}

// Stats returns a snapshot of the sink counters
func (s *WriterSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}
