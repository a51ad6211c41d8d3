package logger

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/philipp01105/slogger/core"
)

// maxStagingSize caps the capacity kept by the staging buffer between entries
const maxStagingSize = 64 * 1024

// Entry composes one message from typed fragments. Fragments are
// written back to back with no separator. An Entry is only valid inside
// the Compose callback that received it; afterwards every method is a
// no-op.
type Entry struct {
	buf *bytes.Buffer
}

// Compose builds a single message at level through fn and emits it once
// fn returns. In thread-safe mode the Logger lock is held for the whole
// callback and released on every exit path, including a panic in fn,
// after the partially built message has been flushed. fn must not log
// through the same Logger.
//
// Compose returns the length of the emitted message, or 0 when the
// message was filtered.
func (l *Logger) Compose(level core.Level, fn func(e *Entry)) (n int) {
	if fn == nil {
		return 0
	}
	if !l.Enabled(level) {
		// Disabled levels take no lock; the callback writes into the void
		fn(&Entry{})
		return 0
	}

	unlock := l.acquire()
	e := &Entry{buf: &l.staging}
	l.pending = level

	defer func() {
		e.buf = nil
		if l.open.Load() && l.pending.Enabled(l.Level()) {
			msg := l.staging.String()
			if err := l.broadcast(l.pending, msg); err == nil {
				n = len(msg)
			}
		}
		l.staging.Reset()
		if l.staging.Cap() > maxStagingSize {
			l.staging = bytes.Buffer{}
		}
		l.pending = l.Level()
		unlock()
	}()

	fn(e)
	return 0
}

// Str appends s
func (e *Entry) Str(s string) *Entry {
	if e.buf != nil {
		e.buf.WriteString(s)
	}
	return e
}

// Int appends the decimal form of i
func (e *Entry) Int(i int) *Entry {
	return e.Int64(int64(i))
}

// Int64 appends the decimal form of i
func (e *Entry) Int64(i int64) *Entry {
	if e.buf != nil {
		e.buf.Write(strconv.AppendInt(e.buf.AvailableBuffer(), i, 10))
	}
	return e
}

// Uint appends the decimal form of u
func (e *Entry) Uint(u uint64) *Entry {
	if e.buf != nil {
		e.buf.Write(strconv.AppendUint(e.buf.AvailableBuffer(), u, 10))
	}
	return e
}

// Float64 appends f in the shortest representation that round-trips
func (e *Entry) Float64(f float64) *Entry {
	if e.buf != nil {
		e.buf.Write(strconv.AppendFloat(e.buf.AvailableBuffer(), f, 'g', -1, 64))
	}
	return e
}

// Bool appends "true" or "false"
func (e *Entry) Bool(b bool) *Entry {
	if e.buf != nil {
		e.buf.Write(strconv.AppendBool(e.buf.AvailableBuffer(), b))
	}
	return e
}

// Time appends t in RFC 3339 form
func (e *Entry) Time(t time.Time) *Entry {
	if e.buf != nil {
		e.buf.Write(t.AppendFormat(e.buf.AvailableBuffer(), time.RFC3339))
	}
	return e
}

// Duration appends d as formatted by time.Duration.String
func (e *Entry) Duration(d time.Duration) *Entry {
	return e.Str(d.String())
}

// Err appends the error text, or "<nil>"
func (e *Entry) Err(err error) *Entry {
	if err == nil {
		return e.Str("<nil>")
	}
	return e.Str(err.Error())
}

// Any appends v in its default format
func (e *Entry) Any(v interface{}) *Entry {
	if e.buf != nil {
		fmt.Fprint(e.buf, v)
	}
	return e
}

// Printf appends the expansion of format with args
func (e *Entry) Printf(format string, args ...interface{}) *Entry {
	if e.buf != nil {
		fmt.Fprintf(e.buf, format, args...)
	}
	return e
}
