package logger

import (
	"io"

	"go.uber.org/zap"

	"github.com/philipp01105/slogger/sink"
	"github.com/philipp01105/slogger/sink/consolesink"
	"github.com/philipp01105/slogger/sink/filesink"
	"github.com/philipp01105/slogger/sink/tracesink"
)

// Handle identifies one sink registration. The zero Handle denotes a
// failed registration and is never issued.
type Handle uint64

// registration is one entry of the ordered sink sequence. Owned sinks
// are closed by the Logger on Remove and Close.
type registration struct {
	id    Handle
	sink  sink.Sink
	owned bool
}

// Add appends s to the sink sequence and returns its registration
// handle. The same sink may be registered more than once. If owned is
// true the Logger closes s when the registration is removed or the
// Logger is closed; otherwise s stays the caller's responsibility.
func (l *Logger) Add(s sink.Sink, owned bool) Handle {
	if s == nil {
		return 0
	}

	unlock := l.acquire()
	defer unlock()

	id := Handle(l.nextID.Add(1))
	l.entries = append(l.entries, registration{id: id, sink: s, owned: owned})
	return id
}

// Remove drops the registration identified by h, closing the sink if
// the Logger owns it. It reports false for unknown or already removed
// handles.
func (l *Logger) Remove(h Handle) bool {
	if h == 0 {
		return false
	}

	unlock := l.acquire()
	defer unlock()

	for i, e := range l.entries {
		if e.id != h {
			continue
		}
		if e.owned {
			if err := e.sink.Close(); err != nil {
				l.diag.Warn("closing removed sink failed", zap.Uint64("handle", uint64(h)), zap.Error(err))
			}
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		return true
	}
	return false
}

// Sinks returns the number of registrations
func (l *Logger) Sinks() int {
	unlock := l.acquire()
	defer unlock()
	return len(l.entries)
}

// SinkStats returns the counters of the sink registered under h, if
// that sink keeps any.
func (l *Logger) SinkStats(h Handle) (sink.Snapshot, bool) {
	unlock := l.acquire()
	defer unlock()

	for _, e := range l.entries {
		if e.id != h {
			continue
		}
		if sp, ok := e.sink.(sink.StatsProvider); ok {
			return sp.Stats(), true
		}
		return sink.Snapshot{}, false
	}
	return sink.Snapshot{}, false
}

// AddConsole registers an owned console sink bound to w (nil selects
// standard output).
func (l *Logger) AddConsole(w io.Writer) Handle {
	return l.addOwned("console", consolesink.New(w))
}

// AddTrace registers an owned trace sink
func (l *Logger) AddTrace(opts ...tracesink.Option) Handle {
	return l.addOwned("trace", tracesink.New(opts...))
}

// AddRotatingFile registers an owned rotating file sink. The sink
// reports to the Logger's diagnostics unless cfg names its own logger.
func (l *Logger) AddRotatingFile(cfg filesink.Config) Handle {
	if cfg.Logger == nil {
		cfg.Logger = l.diag
	}
	return l.addOwned("file", filesink.New(cfg))
}

// addOwned opens s and registers it on success. A sink that fails to
// open is closed and discarded.
func (l *Logger) addOwned(kind string, s sink.Sink) Handle {
	if err := s.Open(); err != nil {
		_ = s.Close()
		l.diag.Warn("sink open failed", zap.String("kind", kind), zap.Error(err))
		return 0
	}
	return l.Add(s, true)
}
