package config

import (
	"fmt"

	"github.com/philipp01105/slogger/core"
)

// Config holds the startup settings of the slogger command
type Config struct {
	Level          string            `mapstructure:"level"`
	TimeFormat     string            `mapstructure:"timeFormat"`
	SingleThreaded bool              `mapstructure:"singleThreaded"`
	Console        ConsoleConfig     `mapstructure:"console"`
	Trace          TraceConfig       `mapstructure:"trace"`
	File           FileConfig        `mapstructure:"file"`
	Diagnostics    DiagnosticsConfig `mapstructure:"diagnostics"`
}

// ConsoleConfig selects the console sink stream
type ConsoleConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Stream  string `mapstructure:"stream"`
}

// TraceConfig controls the execution tracer sink
type TraceConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Category string `mapstructure:"category"`
}

// FileConfig controls the rotating file sink. An empty Path disables it.
type FileConfig struct {
	Path     string `mapstructure:"path"`
	MaxBytes int64  `mapstructure:"maxBytes"`
	Rotate   bool   `mapstructure:"rotate"`
}

// DiagnosticsConfig selects the zap logger that reports sink failures
type DiagnosticsConfig struct {
	// Mode is one of "none", "development" or "production"
	Mode string `mapstructure:"mode"`
}

// Diagnostics modes
const (
	DiagnosticsNone        = "none"
	DiagnosticsDevelopment = "development"
	DiagnosticsProduction  = "production"
)

// Threshold parses the configured level
func (c *Config) Threshold() (core.Level, error) {
	return core.ParseLevel(c.Level)
}

// Validate checks the settings that cannot be corrected silently
func (c *Config) Validate() error {
	if _, err := c.Threshold(); err != nil {
		return err
	}
	if c.File.MaxBytes < 0 {
		return fmt.Errorf("file.maxBytes must not be negative, got %d", c.File.MaxBytes)
	}
	switch c.Console.Stream {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("console.stream must be stdout or stderr, got %q", c.Console.Stream)
	}
	switch c.Diagnostics.Mode {
	case DiagnosticsNone, DiagnosticsDevelopment, DiagnosticsProduction:
	default:
		return fmt.Errorf("unknown diagnostics.mode %q", c.Diagnostics.Mode)
	}
	return nil
}
