package formatter

import (
	"bytes"
	"errors"
	"sync"
	"time"

	"github.com/philipp01105/slogger/core"
)

// DefaultTimeFormat is the strftime pattern used when none is configured.
const DefaultTimeFormat = "%m/%d/%Y-%H:%M:%S"

// ErrSentinelLevel is returned when a threshold-only level reaches the formatter.
var ErrSentinelLevel = errors.New("sentinel level has no name")

// Formatter turns a message into the final line handed to sinks
type Formatter interface {
	// Format renders the line for a message logged at level at time t
	Format(t time.Time, level core.Level, msg string) (string, error)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
