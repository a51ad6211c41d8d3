package consolesink

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"testing"
)

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestConsoleSink_Append(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	if err := s.Open(); err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()

	if err := s.Append("test message"); err != nil {
		t.Errorf("Append() error = %v", err)
	}

	if got := buf.String(); got != "test message" {
		t.Errorf("Expected 'test message' in output, got: %q", got)
	}
	if s.Stats().AppendedTotal != 1 {
		t.Errorf("Expected 1 appended line, got %d", s.Stats().AppendedTotal)
	}
}

func TestConsoleSink_FlushesBufferedWriter(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriterSize(&buf, 4096)
	s := New(bw)

	s.Append("flushed line")

	if got := buf.String(); got != "flushed line" {
		t.Errorf("Expected line to be flushed through bufio.Writer, got: %q", got)
	}
}

func TestConsoleSink_AlwaysReportsSuccess(t *testing.T) {
	s := New(brokenWriter{})

	if err := s.Append("lost"); err != nil {
		t.Errorf("Append() error = %v, want nil", err)
	}
	if s.Stats().FailedTotal != 1 {
		t.Errorf("Expected 1 failed line, got %d", s.Stats().FailedTotal)
	}
}

type syncingWriter struct {
	bytes.Buffer
	syncs int
}

func (w *syncingWriter) Sync() error {
	w.syncs++
	return nil
}

func TestConsoleSink_DoesNotSync(t *testing.T) {
	w := &syncingWriter{}
	s := New(w)

	for i := 0; i < 3; i++ {
		s.Append("line\n")
	}

	if w.syncs != 0 {
		t.Errorf("Expected no Sync calls, got %d", w.syncs)
	}
	if got := w.String(); got != "line\nline\nline\n" {
		t.Errorf("Unexpected output: %q", got)
	}
}

func TestConsoleSink_DefaultsToStdout(t *testing.T) {
	s := New(nil)
	if s.Writer() != os.Stdout {
		t.Error("Expected nil writer to select os.Stdout")
	}
}
