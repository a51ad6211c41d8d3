package tracesink

import (
	"context"
	"runtime/trace"

	"github.com/philipp01105/slogger/sink"
)

// DefaultCategory is the execution tracer category used by the default emitter
const DefaultCategory = "slogger"

// Emitter receives each line destined for the trace channel
type Emitter func(line string)

// TraceSink forwards lines to a platform trace channel. By default the
// channel is the Go execution tracer; lines show up as user log events
// while a trace is being recorded and cost almost nothing otherwise.
type TraceSink struct {
	emit  Emitter
	stats *sink.Stats
}

// Option configures a TraceSink
type Option func(*TraceSink)

// WithEmitter replaces the trace channel
func WithEmitter(e Emitter) Option {
	return func(s *TraceSink) {
		if e != nil {
			s.emit = e
		}
	}
}

// WithCategory sets the execution tracer category of the default emitter
func WithCategory(category string) Option {
	return func(s *TraceSink) {
		s.emit = runtimeTraceEmitter(category)
	}
}

// New creates a trace sink
func New(opts ...Option) *TraceSink {
	s := &TraceSink{
		emit:  runtimeTraceEmitter(DefaultCategory),
		stats: sink.NewStats(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func runtimeTraceEmitter(category string) Emitter {
	return func(line string) {
		trace.Log(context.Background(), category, line)
	}
}

// Open always succeeds
func (s *TraceSink) Open() error {
	return nil
}

// Append forwards line to the trace channel
func (s *TraceSink) Append(line string) error {
	s.emit(line)
	s.stats.IncrementAppended()
	return nil
}

// Close is a no-op
func (s *TraceSink) Close() error {
	return nil
}

// Stats returns a snapshot of the current statistics
func (s *TraceSink) Stats() sink.Snapshot {
	return s.stats.GetSnapshot()
}
