package formatter

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/philipp01105/slogger/core"
)

// separator sits between the timestamp, the level name and the message
const separator = " - "

var _ Formatter = (*TextFormatter)(nil)

// TextFormatter renders "<timestamp> - <LEVEL> - <message>".
type TextFormatter struct {
	timeFormat string
	pattern    *strftime.Strftime
	err        error
}

// New creates a text formatter for the given strftime pattern.
// An empty pattern selects DefaultTimeFormat. A pattern that does not
// compile is kept; lines are then rendered with an empty timestamp.
func New(timeFormat string) *TextFormatter {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	f := &TextFormatter{timeFormat: timeFormat}
	f.pattern, f.err = strftime.New(timeFormat)
	if f.err != nil {
		f.err = fmt.Errorf("time format %q: %w", timeFormat, f.err)
	}
	return f
}

// TimeFormat returns the configured strftime pattern
func (f *TextFormatter) TimeFormat() string {
	return f.timeFormat
}

// Err returns the pattern compile error, if any
func (f *TextFormatter) Err() error {
	return f.err
}

// Format renders one line. No trailing newline is appended; the message
// controls line termination.
func (f *TextFormatter) Format(t time.Time, level core.Level, msg string) (string, error) {
	name := level.String()
	if !level.Valid() || name == "" {
		return "", fmt.Errorf("%w: %d", ErrSentinelLevel, level)
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if f.pattern != nil {
		buf.Write(f.pattern.FormatBuffer(buf.AvailableBuffer(), t))
	}
	buf.WriteString(separator)
	buf.WriteString(name)
	buf.WriteString(separator)
	buf.WriteString(msg)

	return buf.String(), nil
}
