package sink

import (
	"errors"
)

// ErrClosed is returned by Append on a sink that has been closed.
var ErrClosed = errors.New("sink is closed")

// Sink is a destination for formatted log lines
type Sink interface {
	// Open prepares the sink for writing. A non-nil error means the sink
	// is unusable and must not be registered.
	Open() error

	// Append writes one formatted line
	Append(line string) error

	// Close releases resources held by the sink. Calling it again is a no-op.
	Close() error
}

// StatsProvider is implemented by sinks that track their own counters
type StatsProvider interface {
	Stats() Snapshot
}

// flusher is satisfied by bufio.Writer and similar buffered writers.
type flusher interface {
	Flush() error
}

// Flush pushes userspace-buffered data of w to the underlying writer, if
// w is buffered. It never syncs to stable storage.
func Flush(w interface{}) error {
	switch f := w.(type) {
	case flusher:
		return f.Flush()
	default:
		return nil
	}
}
