// Package sink defines the Sink capability set and the pieces shared by
// the built-in sinks.
//
// A Sink has three operations: Open, Append and Close. Whether a sink is
// owned by a logger is not a property of the sink; the logger records
// ownership on each registration and only closes sinks it owns.
//
// Built-in sinks:
//
//   - consolesink writes lines to an io.Writer (default: os.Stdout) and
//     flushes after every line.
//   - tracesink forwards lines to the Go execution tracer, or to any
//     caller-supplied trace function.
//   - filesink writes to a file and rolls over to a fresh, timestamped
//     file once a byte budget is exceeded.
//   - WriterSink adapts an arbitrary io.Writer for caller-managed output.
//
// Sinks are not required to be safe for concurrent use. The logger
// serializes every Append behind its own lock when thread-safe mode is
// enabled.
package sink
