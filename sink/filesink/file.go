package filesink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/philipp01105/slogger/sink"
)

// DefaultMaxBytes is the rotation budget used when Config.MaxBytes is zero
const DefaultMaxBytes int64 = 5 * 1024 * 1024

// Config holds configuration for the rotating file sink
type Config struct {
	// Filename is the path of the first log file
	Filename string
	// MaxBytes is the size budget that triggers rotation (default: 5 MiB)
	MaxBytes int64
	// DisableRotation keeps writing to one ever-growing file
	DisableRotation bool
	// Clock supplies the time used in rotated file names (default: time.Now)
	Clock func() time.Time
	// Logger receives rotation and I/O diagnostics (default: no-op)
	Logger *zap.Logger
}

// FileSink writes lines to a file and starts a fresh, timestamped file
// once the running size exceeds the budget.
type FileSink struct {
	mu       sync.Mutex
	filename string
	active   string
	file     *os.File
	maxBytes int64
	rotate   bool
	size     int64
	index    int
	opened   bool
	now      func() time.Time
	log      *zap.Logger
	stats    *sink.Stats
}

// New creates a file sink. The file is not touched until Open.
func New(cfg Config) *FileSink {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &FileSink{
		filename: cfg.Filename,
		active:   cfg.Filename,
		maxBytes: cfg.MaxBytes,
		rotate:   !cfg.DisableRotation,
		now:      cfg.Clock,
		log:      cfg.Logger.With(zap.String("sink", "file"), zap.String("filename", cfg.Filename)),
		stats:    sink.NewStats(),
	}
}

// Open opens the configured path in append mode and records its current
// length as the running size.
func (s *FileSink) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}
	if s.filename == "" {
		return fmt.Errorf("filename is required")
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(s.filename), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(s.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.filename, err)
	}

	size, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		file.Close()
		return fmt.Errorf("seek %s: %w", s.filename, err)
	}

	s.file = file
	s.active = s.filename
	s.size = size
	s.opened = true
	return nil
}

// Append writes line, rotating first when the running size exceeds the
// budget. If a rotation could not open its new file the sink stays
// without a file and every later Append retries the rotation.
func (s *FileSink) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return sink.ErrClosed
	}

	if s.rotate && (s.file == nil || s.size > s.maxBytes) {
		if err := s.rotateFile(); err != nil {
			s.stats.IncrementFailed()
			return err
		}
	}

	n, err := io.WriteString(s.file, line)
	if err != nil {
		s.stats.IncrementFailed()
		s.size += int64(n)
		return fmt.Errorf("write %s: %w", s.active, err)
	}

	if pos, err := s.file.Seek(0, io.SeekCurrent); err == nil {
		s.size = pos
	} else {
		s.size += int64(n)
	}
	s.stats.IncrementAppended()
	return nil
}

// rotateFile closes the current file and opens a new truncated one
// named after the original path, the current time and the next index.
func (s *FileSink) rotateFile() error {
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			s.log.Warn("closing file before rotation failed", zap.String("path", s.active), zap.Error(err))
		}
		s.file = nil
	}

	s.index++
	name := RotatedName(s.filename, s.now(), s.index)

	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		s.log.Warn("rotation failed, dropping lines until a retry succeeds",
			zap.String("path", name), zap.Int("index", s.index), zap.Error(err))
		return fmt.Errorf("rotate to %s: %w", name, err)
	}

	s.log.Debug("rotated log file", zap.String("from", s.active), zap.String("to", name), zap.Int("index", s.index))
	s.file = file
	s.active = name
	s.size = 0
	return nil
}

// Close syncs and closes the current file. Calling it again is a no-op.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.opened = false
	if s.file == nil {
		return nil
	}

	file := s.file
	s.file = nil
	if err := file.Sync(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Path returns the file currently written to
func (s *FileSink) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Size returns the running size counter of the current file
func (s *FileSink) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Rotations returns the rotation index, incremented on every attempt
func (s *FileSink) Rotations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Stats returns a snapshot of the current statistics
func (s *FileSink) Stats() sink.Snapshot {
	return s.stats.GetSnapshot()
}
