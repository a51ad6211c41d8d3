package logger

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/slogger/core"
	"github.com/philipp01105/slogger/formatter"
)

var (
	// ErrAlreadyOpen is returned by Open on an open Logger
	ErrAlreadyOpen = errors.New("logger is already open")
	// ErrNotOpen is returned by Close on a closed Logger
	ErrNotOpen = errors.New("logger is not open")
)

// Logger filters messages by severity, formats them and broadcasts the
// resulting line to every registered sink in registration order.
type Logger struct {
	// mu serializes log calls and registry changes in thread-safe mode.
	// Open and Close always take it.
	mu         sync.Mutex
	threadSafe atomic.Bool
	open       atomic.Bool
	level      atomic.Int32

	formatter *formatter.TextFormatter
	entries   []registration
	nextID    atomic.Uint64

	// staging and pending back Compose; only touched under mu
	staging bytes.Buffer
	pending core.Level

	now   func() time.Time
	diag  *zap.Logger
	stats *Stats
}

// Option configures a Logger at construction
type Option func(*Logger)

// WithDiagnostics sets the logger that receives swallowed sink failures
func WithDiagnostics(z *zap.Logger) Option {
	return func(l *Logger) {
		if z != nil {
			l.diag = z
		}
	}
}

// WithClock sets the time source used for line timestamps
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates a closed Logger
func New(opts ...Option) *Logger {
	l := &Logger{
		formatter: formatter.New(""),
		now:       time.Now,
		diag:      zap.NewNop(),
		stats:     newStats(),
	}
	l.level.Store(int32(core.AllowAllLevel))
	l.pending = core.AllowAllLevel
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type openConfig struct {
	threadSafe bool
	level      core.Level
	timeFormat string
}

// OpenOption configures a single Open call
type OpenOption func(*openConfig)

// WithThreadSafe enables or disables serialization of all calls (default: enabled)
func WithThreadSafe(enabled bool) OpenOption {
	return func(c *openConfig) {
		c.threadSafe = enabled
	}
}

// WithLevel sets the threshold (default: AllowAllLevel)
func WithLevel(level core.Level) OpenOption {
	return func(c *openConfig) {
		c.level = level
	}
}

// WithTimeFormat sets the strftime pattern of line timestamps
// (default: "%m/%d/%Y-%H:%M:%S")
func WithTimeFormat(pattern string) OpenOption {
	return func(c *openConfig) {
		c.timeFormat = pattern
	}
}

// Open transitions the Logger to the open state. Every call starts from
// the defaults, so a reopened Logger keeps nothing from its previous
// session. It returns ErrAlreadyOpen, leaving state untouched, when the
// Logger is already open.
func (l *Logger) Open(opts ...OpenOption) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.open.Load() {
		return ErrAlreadyOpen
	}

	cfg := openConfig{
		threadSafe: true,
		level:      core.AllowAllLevel,
		timeFormat: formatter.DefaultTimeFormat,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := formatter.New(cfg.timeFormat)
	if err := f.Err(); err != nil {
		l.diag.Warn("invalid time format, timestamps will be empty",
			zap.String("time_format", cfg.timeFormat), zap.Error(err))
	}

	l.formatter = f
	l.level.Store(int32(cfg.level))
	l.pending = cfg.level
	l.threadSafe.Store(cfg.threadSafe)
	l.open.Store(true)
	return nil
}

// Close closes and releases every owned sink, drops all registrations
// and leaves thread-safe mode. Close errors of owned sinks are combined
// into the returned error. On a closed Logger it returns ErrNotOpen and
// does nothing.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open.Load() {
		return ErrNotOpen
	}

	var err error
	for _, e := range l.entries {
		if e.owned {
			err = multierr.Append(err, e.sink.Close())
		}
	}
	l.entries = nil
	l.staging.Reset()
	l.threadSafe.Store(false)
	l.open.Store(false)
	return err
}

// IsOpen reports whether the Logger is open
func (l *Logger) IsOpen() bool {
	return l.open.Load()
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel sets the threshold and returns the previous one
func (l *Logger) SetLevel(level core.Level) core.Level {
	return core.Level(l.level.Swap(int32(level)))
}

// TimeFormat returns the strftime pattern used for timestamps
func (l *Logger) TimeFormat() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.formatter.TimeFormat()
}

// Enabled reports whether a message at level would be emitted
func (l *Logger) Enabled(level core.Level) bool {
	return l.open.Load() && level.Enabled(l.Level())
}

// acquire takes the shared lock in thread-safe mode and returns the
// matching release function.
func (l *Logger) acquire() func() {
	if !l.threadSafe.Load() {
		return func() {}
	}
	l.mu.Lock()
	return l.mu.Unlock
}

// Log renders format with args and emits the result at level. It
// returns the length of the rendered message, or 0 when the message was
// filtered or could not be formatted. Sink failures never reach the
// caller.
func (l *Logger) Log(level core.Level, format string, args ...interface{}) int {
	// Level check before any lock or formatting
	if !l.Enabled(level) {
		return 0
	}
	return l.emit(level, fmt.Sprintf(format, args...))
}

// Print emits msg at level without format expansion
func (l *Logger) Print(level core.Level, msg string) int {
	if !l.Enabled(level) {
		return 0
	}
	return l.emit(level, msg)
}

func (l *Logger) emit(level core.Level, msg string) int {
	unlock := l.acquire()
	defer unlock()

	if err := l.broadcast(level, msg); err != nil {
		return 0
	}
	return len(msg)
}

// broadcast formats msg and appends it to every sink in registration
// order. The caller holds the lock in thread-safe mode.
func (l *Logger) broadcast(level core.Level, msg string) error {
	line, err := l.formatter.Format(l.now(), level, msg)
	if err != nil {
		l.stats.dropped.Add(1)
		l.diag.Debug("dropping message", zap.Stringer("level", level), zap.Error(err))
		return err
	}

	for _, e := range l.entries {
		if err := e.sink.Append(line); err != nil {
			l.stats.sinkFailures.Add(1)
			l.diag.Warn("sink append failed", zap.Uint64("handle", uint64(e.id)), zap.Error(err))
		}
	}
	l.stats.emitted[level].Add(1)
	return nil
}

// Fatalf logs a fatal message with formatting. It does not exit.
func (l *Logger) Fatalf(format string, args ...interface{}) int {
	return l.Log(core.FatalLevel, format, args...)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) int {
	return l.Log(core.ErrorLevel, format, args...)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) int {
	return l.Log(core.WarningLevel, format, args...)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) int {
	return l.Log(core.InfoLevel, format, args...)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) int {
	return l.Log(core.DebugLevel, format, args...)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) int {
	return l.Log(core.TraceLevel, format, args...)
}
