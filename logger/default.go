package logger

import (
	"sync"

	"github.com/philipp01105/slogger/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

// newDefault opens a thread-safe, allow-all Logger with a console sink
// on standard output.
func newDefault() *Logger {
	l := New()
	_ = l.Open()
	l.AddConsole(nil)
	return l
}

// Default returns the default logger, creating it on first use
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = newDefault()
	}
	return defaultLogger
}

// SetDefault sets the default logger. The previous default is not closed.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs a formatted message at level using the default logger
func Log(level core.Level, format string, args ...interface{}) int {
	return Default().Log(level, format, args...)
}

// Print logs msg at level using the default logger
func Print(level core.Level, msg string) int {
	return Default().Print(level, msg)
}

// Compose builds a message from fragments using the default logger
func Compose(level core.Level, fn func(e *Entry)) int {
	return Default().Compose(level, fn)
}

// Fatalf logs a formatted fatal message using the default logger. It does not exit.
func Fatalf(format string, args ...interface{}) int {
	return Default().Fatalf(format, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) int {
	return Default().Errorf(format, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) int {
	return Default().Warningf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) int {
	return Default().Infof(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) int {
	return Default().Debugf(format, args...)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) int {
	return Default().Tracef(format, args...)
}
