package logger

import (
	"sync/atomic"

	"github.com/philipp01105/slogger/core"
)

// Stats tracks logger-wide counters
type Stats struct {
	emitted      [core.AllowAllLevel + 1]atomic.Uint64
	sinkFailures atomic.Uint64
	dropped      atomic.Uint64
}

func newStats() *Stats {
	return &Stats{}
}

// Snapshot is a point-in-time copy of the logger counters
type Snapshot struct {
	// Emitted counts broadcast lines per level
	Emitted map[core.Level]uint64
	// SinkFailures counts failed appends across all sinks
	SinkFailures uint64
	// Dropped counts messages that passed the filter but could not be formatted
	Dropped uint64
}

// Total returns the number of broadcast lines across all levels
func (s Snapshot) Total() uint64 {
	var total uint64
	for _, n := range s.Emitted {
		total += n
	}
	return total
}

// Stats returns a snapshot of the current counters
func (l *Logger) Stats() Snapshot {
	snap := Snapshot{
		Emitted:      make(map[core.Level]uint64, core.TraceLevel),
		SinkFailures: l.stats.sinkFailures.Load(),
		Dropped:      l.stats.dropped.Load(),
	}
	for level := core.FatalLevel; level <= core.TraceLevel; level++ {
		snap.Emitted[level] = l.stats.emitted[level].Load()
	}
	return snap
}
