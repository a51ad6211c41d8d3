package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names outside the level table.
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity of a log entry. Lower values are more
// severe. SuppressLevel and AllowAllLevel are threshold-only sentinels and
// are never valid for an individual message.
type Level int8

const (
	// SuppressLevel as a threshold lets nothing through
	SuppressLevel Level = iota
	// FatalLevel for unrecoverable conditions
	FatalLevel
	// ErrorLevel for error messages
	ErrorLevel
	// WarningLevel for warning messages
	WarningLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very fine grained tracing
	TraceLevel
	// AllowAllLevel as a threshold lets every message level through
	AllowAllLevel
)

// levelNames is indexed by Level. Sentinel slots are intentionally empty.
var levelNames = [...]string{
	SuppressLevel: "",
	FatalLevel:    "FATAL",
	ErrorLevel:    "ERROR",
	WarningLevel:  "WARNING",
	InfoLevel:     "INFO",
	DebugLevel:    "DEBUG",
	TraceLevel:    "TRACE",
	AllowAllLevel: "",
}

// String returns the label of the level, or "" for sentinels and
// out-of-range values.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return ""
	}
	return levelNames[l]
}

// IsSentinel reports whether l is one of the threshold-only markers.
func (l Level) IsSentinel() bool {
	return l == SuppressLevel || l == AllowAllLevel
}

// Valid reports whether l may be attached to an emitted message.
func (l Level) Valid() bool {
	return l > SuppressLevel && l < AllowAllLevel
}

// Enabled reports whether a message at level l passes the threshold.
func (l Level) Enabled(threshold Level) bool {
	return l.Valid() && l <= threshold
}

// ParseLevel converts a name to a Level. Matching is case-insensitive.
// "none"/"off" map to SuppressLevel and "all" to AllowAllLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF", "SUPPRESS":
		return SuppressLevel, nil
	case "FATAL":
		return FatalLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "TRACE":
		return TraceLevel, nil
	case "ALL":
		return AllowAllLevel, nil
	default:
		return AllowAllLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}
