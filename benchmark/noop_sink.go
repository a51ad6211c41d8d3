package benchmark

import (
	"github.com/philipp01105/slogger/sink"
)

// noopSink measures the logger without any sink I/O
type noopSink struct{}

func newNoopSink() sink.Sink {
	return &noopSink{}
}

func (s *noopSink) Open() error { return nil }

func (s *noopSink) Append(line string) error {
	_ = len(line)
	return nil
}

func (s *noopSink) Close() error { return nil }
