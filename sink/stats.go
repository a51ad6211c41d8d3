package sink

import "sync/atomic"

// Stats tracks sink statistics
type Stats struct {
	// AppendedTotal counts lines written successfully
	AppendedTotal uint64
	// FailedTotal counts lines the sink could not write
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementAppended atomically increments the appended counter
func (s *Stats) IncrementAppended() {
	atomic.AddUint64(&s.AppendedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetAppended returns the appended count
func (s *Stats) GetAppended() uint64 {
	return atomic.LoadUint64(&s.AppendedTotal)
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.AppendedTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	AppendedTotal uint64
	FailedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		AppendedTotal: s.GetAppended(),
		FailedTotal:   s.GetFailed(),
	}
}
