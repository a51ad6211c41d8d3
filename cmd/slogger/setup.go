package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/philipp01105/slogger/internal/config"
	"github.com/philipp01105/slogger/logger"
	"github.com/philipp01105/slogger/sink/filesink"
	"github.com/philipp01105/slogger/sink/tracesink"
)

// loadConfig reads the config file and applies explicitly set global flags
func loadConfig(c *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if c.IsSet("level") {
		cfg.Level = c.String("level")
	}
	if c.IsSet("time-format") {
		cfg.TimeFormat = c.String("time-format")
	}
	if c.IsSet("file") {
		cfg.File.Path = c.String("file")
	}
	if c.IsSet("max-bytes") {
		cfg.File.MaxBytes = c.Int64("max-bytes")
	}
	if c.Bool("no-rotate") {
		cfg.File.Rotate = false
	}
	if c.Bool("trace") {
		cfg.Trace.Enabled = true
	}
	if c.Bool("single-threaded") {
		cfg.SingleThreaded = true
	}
	if c.Bool("debug") {
		cfg.Diagnostics.Mode = config.DiagnosticsDevelopment
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// newDiagnostics builds the zap logger for swallowed sink failures
func newDiagnostics(mode string) (*zap.Logger, error) {
	switch mode {
	case config.DiagnosticsDevelopment:
		return zap.NewDevelopment()
	case config.DiagnosticsProduction:
		return zap.NewProduction()
	default:
		return zap.NewNop(), nil
	}
}

// openLogger opens a Logger and registers the sinks named by cfg. The
// returned handle identifies the file sink, or is zero without one.
func openLogger(cfg *config.Config, diag *zap.Logger) (*logger.Logger, logger.Handle, error) {
	level, err := cfg.Threshold()
	if err != nil {
		return nil, 0, err
	}

	l := logger.New(logger.WithDiagnostics(diag))
	if err := l.Open(
		logger.WithLevel(level),
		logger.WithTimeFormat(cfg.TimeFormat),
		logger.WithThreadSafe(!cfg.SingleThreaded),
	); err != nil {
		return nil, 0, err
	}

	if cfg.Console.Enabled {
		out := os.Stdout
		if cfg.Console.Stream == "stderr" {
			out = os.Stderr
		}
		l.AddConsole(out)
	}

	if cfg.Trace.Enabled {
		l.AddTrace(tracesink.WithCategory(cfg.Trace.Category))
	}

	var fileHandle logger.Handle
	if cfg.File.Path != "" {
		fileHandle = l.AddRotatingFile(filesink.Config{
			Filename:        cfg.File.Path,
			MaxBytes:        cfg.File.MaxBytes,
			DisableRotation: !cfg.File.Rotate,
		})
		if fileHandle == 0 {
			_ = l.Close()
			return nil, 0, fmt.Errorf("cannot open log file %s", cfg.File.Path)
		}
	}

	return l, fileHandle, nil
}
