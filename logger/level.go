package logger

import (
	"github.com/philipp01105/slogger/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	SuppressLevel = core.SuppressLevel
	FatalLevel    = core.FatalLevel
	ErrorLevel    = core.ErrorLevel
	WarningLevel  = core.WarningLevel
	InfoLevel     = core.InfoLevel
	DebugLevel    = core.DebugLevel
	TraceLevel    = core.TraceLevel
	AllowAllLevel = core.AllowAllLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
