package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/philipp01105/slogger/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a Logger.
// Attributes are appended to the message as " key=value" pairs, so the
// line keeps the "<timestamp> - <LEVEL> - <message>" shape. Every record
// ends with a newline.
type SlogHandler struct {
	logger *Logger
	attrs  []byte
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter writing through l.
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{logger: l}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle renders the record and its attributes into one message and logs it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToCore(record.Level)
	if !s.logger.Enabled(level) {
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(record.Message)
	buf.Write(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, s.group, a)
		return true
	})
	// Lines are not terminated by the Logger
	buf.WriteByte('\n')

	s.logger.Print(level, buf.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(append([]byte(nil), s.attrs...))
	for _, a := range attrs {
		appendAttr(buf, s.group, a)
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  buf.Bytes(),
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		logger: s.logger,
		attrs:  s.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr writes " key=value" for a, prefixing the key with group.
// Group attributes are flattened into dotted keys.
func appendAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(buf, key, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')

	switch a.Value.Kind() {
	case slog.KindString:
		buf.WriteString(a.Value.String())
	case slog.KindInt64:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), a.Value.Int64(), 10))
	case slog.KindUint64:
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), a.Value.Uint64(), 10))
	case slog.KindFloat64:
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), a.Value.Float64(), 'g', -1, 64))
	case slog.KindBool:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), a.Value.Bool()))
	case slog.KindTime:
		buf.Write(a.Value.Time().AppendFormat(buf.AvailableBuffer(), time.RFC3339))
	case slog.KindDuration:
		buf.WriteString(a.Value.Duration().String())
	default:
		fmt.Fprint(buf, a.Value.Any())
	}
}
