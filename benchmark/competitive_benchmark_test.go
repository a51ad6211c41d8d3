package benchmark

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/slogger/logger"
	"github.com/philipp01105/slogger/sink/filesink"
)

// ---------------------------------------------------------------------------
// Helpers – plain text lines to io.Discard for every framework
// ---------------------------------------------------------------------------

// newSlogger returns a thread-safe slogger logger with a console sink on io.Discard.
func newSlogger(b *testing.B, level logger.Level) *logger.Logger {
	l := logger.New()
	if err := l.Open(logger.WithLevel(level)); err != nil {
		b.Fatal(err)
	}
	l.AddConsole(io.Discard)
	return l
}

// newZapLogger returns a zap.Logger that writes console lines to io.Discard.
func newZapLogger(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger that writes text to io.Discard.
func newSlogLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level}))
}

// newLogrusLogger returns a logrus.Logger that writes text to io.Discard.
func newLogrusLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	l.SetLevel(level)
	return l
}

// newZerologLogger returns a zerolog.Logger that writes JSON to io.Discard.
func newZerologLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(level)
}

// ---------------------------------------------------------------------------
// Scenario 1 – printf-style message
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Formatted(b *testing.B) {
	b.Run("slogger", func(b *testing.B) {
		l := newSlogger(b, logger.AllowAllLevel)
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %s took %d ms", "/api/users", 150)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel).Sugar()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %s took %d ms", "/api/users", 150)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request %s took %d ms", "/api/users", 150)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("request %s took %d ms", "/api/users", 150)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – message built from typed fragments
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Fragments(b *testing.B) {
	b.Run("slogger", func(b *testing.B) {
		l := newSlogger(b, logger.AllowAllLevel)
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Compose(logger.InfoLevel, func(e *logger.Entry) {
				e.Str("method=GET status=").Int(200).Str(" ok=").Bool(true)
			})
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger(slog.LevelDebug)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("", slog.String("method", "GET"), slog.Int("status", 200), slog.Bool("ok", true))
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Str("method", "GET").Int("status", 200).Bool("ok", true).Send()
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – Disabled level (filtered)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_DisabledLevel(b *testing.B) {
	b.Run("slogger", func(b *testing.B) {
		l := newSlogger(b, logger.ErrorLevel)
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %s", "value")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug("should be skipped", zap.String("key", "value"))
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %s", "value")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Str("key", "value").Msg("should be skipped")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 4 – Parallel / high-concurrency logging
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("slogger", func(b *testing.B) {
		l := newSlogger(b, logger.AllowAllLevel)
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Infof("parallel log key=%s count=%d", "value", 42)
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info("parallel log",
					zap.String("key", "value"),
					zap.Int("count", 42),
				)
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Infof("parallel log key=%s count=%d", "value", 42)
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Info().
					Str("key", "value").
					Int("count", 42).
					Msg("parallel log")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 5 – File output (real I/O, equal conditions)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_FileOutput(b *testing.B) {
	b.Run("slogger", func(b *testing.B) {
		l := logger.New()
		if err := l.Open(logger.WithLevel(logger.InfoLevel)); err != nil {
			b.Fatal(err)
		}
		h := l.AddRotatingFile(filesink.Config{
			Filename:        filepath.Join(b.TempDir(), "bench-slogger.log"),
			DisableRotation: true,
		})
		if h == 0 {
			b.Fatal("cannot open log file")
		}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("file log key=%s\n", "value")
		}
		b.StopTimer()
		l.Close()
	})

	b.Run("slogger-rotating", func(b *testing.B) {
		l := logger.New()
		if err := l.Open(logger.WithLevel(logger.InfoLevel)); err != nil {
			b.Fatal(err)
		}
		h := l.AddRotatingFile(filesink.Config{
			Filename: filepath.Join(b.TempDir(), "bench-slogger.log"),
			MaxBytes: 1 << 20,
		})
		if h == 0 {
			b.Fatal("cannot open log file")
		}
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("file log key=%s\n", "value")
		}
		b.StopTimer()
		l.Close()
	})

	b.Run("zap", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zap-*.log")
		if err != nil {
			b.Fatal(err)
		}
		enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(f), zap.InfoLevel)
		l := zap.New(core)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("file log", zap.String("key", "value"))
		}
		b.StopTimer()
		l.Sync()
		f.Close()
	})

	b.Run("logrus", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-logrus-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := newLogrusLogger(logrus.InfoLevel)
		l.SetOutput(f)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithField("key", "value").Info("file log")
		}
		b.StopTimer()
		f.Close()
	})

	b.Run("zerolog", func(b *testing.B) {
		f, err := os.CreateTemp(b.TempDir(), "bench-zerolog-*.log")
		if err != nil {
			b.Fatal(err)
		}
		l := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Str("key", "value").Msg("file log")
		}
		b.StopTimer()
		f.Close()
	})
}

// ---------------------------------------------------------------------------
// Scenario 6 – Broadcast cost per registered sink
// ---------------------------------------------------------------------------

func BenchmarkBroadcast(b *testing.B) {
	for _, sinks := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("sinks=%d", sinks), func(b *testing.B) {
			l := logger.New()
			if err := l.Open(); err != nil {
				b.Fatal(err)
			}
			defer l.Close()
			for i := 0; i < sinks; i++ {
				l.Add(newNoopSink(), true)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Infof("broadcast %d", i)
			}
		})
	}
}
