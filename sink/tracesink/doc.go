// Package tracesink provides a sink that forwards formatted lines to a
// debug/trace channel instead of a regular output stream.
//
// The default channel is runtime/trace: every line becomes a user log
// event in the "slogger" category, visible in `go tool trace` when the
// program is traced. WithEmitter routes lines anywhere else, for example
// to an attached debugger bridge or a test recorder.
package tracesink
