package logger

import (
	"testing"
)

func TestDefault_LazyAndReplaceable(t *testing.T) {
	orig := Default()
	if orig == nil || !orig.IsOpen() {
		t.Fatal("Default logger is not open")
	}
	if orig.Level() != AllowAllLevel || !orig.threadSafe.Load() {
		t.Error("Default logger is not a thread-safe allow-all logger")
	}
	if orig.Sinks() != 1 {
		t.Errorf("Default logger has %d sinks, want 1", orig.Sinks())
	}

	custom := openLogger(t, WithTimeFormat("%Y"))
	s := &recordingSink{}
	custom.Add(s, false)

	SetDefault(custom)
	defer SetDefault(orig)

	Fatalf("f")
	Errorf("e")
	Warningf("w")
	Infof("i")
	Debugf("d")
	Tracef("t")
	Log(InfoLevel, "n=%d", 1)
	Print(InfoLevel, "p")
	Compose(InfoLevel, func(e *Entry) { e.Str("c") })

	if got := len(s.Lines()); got != 9 {
		t.Errorf("Default logger delivered %d lines, want 9", got)
	}
}
