package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/philipp01105/slogger/core"
	"github.com/philipp01105/slogger/internal/config"
	"github.com/philipp01105/slogger/sink/filesink"
)

// StressCommand creates the stress command
func StressCommand() *cli.Command {
	return &cli.Command{
		Name:  "stress",
		Usage: "Log from many goroutines and check the file output for interleaved lines",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of concurrent producers",
				Value: 8,
			},
			&cli.IntFlag{
				Name:  "lines",
				Usage: "Lines written by each producer",
				Value: 1000,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			workers, lines := c.Int("workers"), c.Int("lines")
			if workers <= 0 || lines <= 0 {
				return fmt.Errorf("workers and lines must be positive")
			}

			if cfg.File.Path == "" {
				dir, err := os.MkdirTemp("", "slogger-stress")
				if err != nil {
					return err
				}
				defer os.RemoveAll(dir)
				cfg.File.Path = filepath.Join(dir, "stress.log")
			}
			// Console output would drown the report
			cfg.Console.Enabled = false

			report, err := stress(cfg, workers, lines)
			if err != nil {
				return err
			}
			fmt.Println(report)
			if !report.OK() {
				return fmt.Errorf("detected %d corrupted lines", report.Corrupted)
			}
			return nil
		},
	}
}

// stressReport summarizes one stress run
type stressReport struct {
	Workers   int
	Expected  int
	Seen      int
	Corrupted int
	Files     int
	Failed    uint64
	Elapsed   time.Duration
}

// OK reports whether every line arrived intact
func (r stressReport) OK() bool {
	return r.Corrupted == 0 && r.Failed == 0 && r.Seen == r.Expected
}

func (r stressReport) String() string {
	return fmt.Sprintf("workers=%d expected=%d seen=%d corrupted=%d failed=%d files=%d elapsed=%s",
		r.Workers, r.Expected, r.Seen, r.Corrupted, r.Failed, r.Files, r.Elapsed)
}

func stress(cfg *config.Config, workers, lines int) (stressReport, error) {
	diag, err := newDiagnostics(cfg.Diagnostics.Mode)
	if err != nil {
		return stressReport{}, err
	}
	defer func() { _ = diag.Sync() }()

	out, err := snapshotOutput(cfg.File.Path)
	if err != nil {
		return stressReport{}, err
	}

	l, fileHandle, err := openLogger(cfg, diag)
	if err != nil {
		return stressReport{}, err
	}
	if !l.Enabled(core.InfoLevel) {
		_ = l.Close()
		return stressReport{}, fmt.Errorf("threshold %q filters the stress lines", cfg.Level)
	}

	markers := make([]string, workers)
	for i := range markers {
		markers[i] = uuid.NewString()
	}

	start := time.Now()
	var wg sync.WaitGroup
	for _, marker := range markers {
		wg.Add(1)
		go func(marker string) {
			defer wg.Done()
			for i := 0; i < lines; i++ {
				l.Infof("%s %d %s\n", marker, i, marker)
			}
		}(marker)
	}
	wg.Wait()
	elapsed := time.Since(start)

	var failed uint64
	if stats, ok := l.SinkStats(fileHandle); ok {
		failed = stats.FailedTotal
	}

	if err := l.Close(); err != nil {
		return stressReport{}, err
	}

	report, err := out.scan(markers)
	if err != nil {
		return stressReport{}, err
	}
	report.Workers = workers
	report.Expected = workers * lines
	report.Failed = failed
	report.Elapsed = elapsed
	return report, nil
}

// outputFiles is the log file and its rotated siblings as they were
// before a stress run. Only content written after the snapshot is scanned.
type outputFiles struct {
	path    string
	glob    string
	rotated *regexp.Regexp
	offset  int64
	before  map[string]bool
}

// snapshotOutput records the size of the log file and the rotated files
// that already exist next to it.
func snapshotOutput(path string) (*outputFiles, error) {
	// The zero time renders the suffix with a known width
	sample := filesink.RotatedName(path, time.Time{}, 0)
	suffix := "_" + time.Time{}.Format("20060102_150405") + "_0"
	i := strings.LastIndex(sample, suffix)
	if i < 0 {
		return nil, fmt.Errorf("unexpected rotated name %q", sample)
	}
	prefix, rest := sample[:i], sample[i+len(suffix):]

	out := &outputFiles{
		path: path,
		glob: prefix + "_*" + rest,
		rotated: regexp.MustCompile("^" + regexp.QuoteMeta(prefix) +
			`_\d{8}_\d{6}_\d+` + regexp.QuoteMeta(rest) + "$"),
		before: make(map[string]bool),
	}

	switch info, err := os.Stat(path); {
	case err == nil:
		out.offset = info.Size()
	case !os.IsNotExist(err):
		return nil, err
	}

	existing, err := out.rotatedFiles()
	if err != nil {
		return nil, err
	}
	for _, file := range existing {
		out.before[file] = true
	}
	return out, nil
}

func (o *outputFiles) rotatedFiles() ([]string, error) {
	matches, err := filepath.Glob(o.glob)
	if err != nil {
		return nil, err
	}
	files := matches[:0]
	for _, m := range matches {
		if o.rotated.MatchString(m) {
			files = append(files, m)
		}
	}
	return files, nil
}

// scan reads what was written to the log file and its new rotated
// siblings since the snapshot, counting intact lines per marker.
func (o *outputFiles) scan(markers []string) (stressReport, error) {
	known := make(map[string]bool, len(markers))
	for _, m := range markers {
		known[m] = true
	}

	rotated, err := o.rotatedFiles()
	if err != nil {
		return stressReport{}, err
	}

	var report stressReport
	if err := scanFile(o.path, o.offset, known, &report); err != nil {
		return stressReport{}, err
	}
	for _, file := range rotated {
		if o.before[file] {
			continue
		}
		if err := scanFile(file, 0, known, &report); err != nil {
			return stressReport{}, err
		}
	}
	return report, nil
}

func scanFile(path string, offset int64, known map[string]bool, report *stressReport) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	report.Files++

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		_, msg, ok := strings.Cut(scanner.Text(), " - INFO - ")
		fields := strings.Fields(msg)
		if !ok || len(fields) != 3 || fields[0] != fields[2] || !known[fields[0]] {
			report.Corrupted++
			continue
		}
		report.Seen++
	}
	return scanner.Err()
}
