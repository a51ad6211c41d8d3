package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// VersionCommand creates the version command
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(ctx context.Context, c *cli.Command) error {
			fmt.Printf("slogger %s (%s)\n", version, runtime.Version())
			return nil
		},
	}
}
