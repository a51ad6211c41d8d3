package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "slogger",
		Usage: "Write severity-filtered log lines to console, trace and rotating file sinks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path (default: search ./slogger.* and ./configs)",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Threshold: none, fatal, error, warning, info, debug, trace or all",
			},
			&cli.StringFlag{
				Name:  "time-format",
				Usage: "strftime pattern for line timestamps",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Also write to this rotating log file",
			},
			&cli.Int64Flag{
				Name:  "max-bytes",
				Usage: "Rotation budget of the log file in bytes",
			},
			&cli.BoolFlag{
				Name:  "no-rotate",
				Usage: "Never rotate the log file",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "Also forward lines to the Go execution tracer",
			},
			&cli.BoolFlag{
				Name:  "single-threaded",
				Usage: "Disable locking inside the logger",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Report sink failures on stderr",
			},
		},
		Commands: []*cli.Command{
			EmitCommand(),
			StressCommand(),
			VersionCommand(),
		},
	}
}
