package consolesink

import (
	"io"
	"os"

	"github.com/philipp01105/slogger/sink"
)

// ConsoleSink writes lines to a caller-supplied output stream
type ConsoleSink struct {
	writer io.Writer
	stats  *sink.Stats
}

// New creates a console sink bound to w. A nil writer selects os.Stdout.
func New(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSink{
		writer: w,
		stats:  sink.NewStats(),
	}
}

// Open always succeeds
func (s *ConsoleSink) Open() error {
	return nil
}

// Append writes the line and flushes the stream. It always reports
// success; write failures are only visible through Stats.
func (s *ConsoleSink) Append(line string) error {
	if _, err := io.WriteString(s.writer, line); err != nil {
		s.stats.IncrementFailed()
		return nil
	}
	// Only buffered writers are flushed; an *os.File is never fsynced
	_ = sink.Flush(s.writer)
	s.stats.IncrementAppended()
	return nil
}

// Close is a no-op; the stream belongs to the caller
func (s *ConsoleSink) Close() error {
	return nil
}

// Writer returns the bound output stream
func (s *ConsoleSink) Writer() io.Writer {
	return s.writer
}

// Stats returns a snapshot of the current statistics
func (s *ConsoleSink) Stats() sink.Snapshot {
	return s.stats.GetSnapshot()
}
