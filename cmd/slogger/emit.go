package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/philipp01105/slogger/core"
	"github.com/philipp01105/slogger/internal/config"
)

// EmitCommand creates the emit command
func EmitCommand() *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Usage:     "Log one message",
		ArgsUsage: "<level> <message...>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() < 2 {
				return fmt.Errorf("usage: slogger emit <level> <message...>")
			}

			level, err := core.ParseLevel(c.Args().First())
			if err != nil {
				return err
			}
			if !level.Valid() {
				return fmt.Errorf("%q is a threshold, not a message level", c.Args().First())
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return emit(cfg, level, strings.Join(c.Args().Tail(), " ")+"\n")
		},
	}
}

func emit(cfg *config.Config, level core.Level, msg string) error {
	diag, err := newDiagnostics(cfg.Diagnostics.Mode)
	if err != nil {
		return err
	}
	defer func() { _ = diag.Sync() }()

	l, _, err := openLogger(cfg, diag)
	if err != nil {
		return err
	}

	if l.Print(level, msg) == 0 {
		diag.Debug("message filtered", zap.Stringer("level", level), zap.Stringer("threshold", l.Level()))
	}
	return l.Close()
}
