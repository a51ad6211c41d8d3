// Package logger is the public API of slogger. Most users only need to
// import this package.
//
// A Logger is created closed. Open sets the threshold, the timestamp
// pattern and thread-safe mode; Close releases every sink the Logger
// owns and forgets all registrations. A closed Logger can be opened
// again and starts from a clean state.
//
//	log := logger.New()
//	_ = log.Open(logger.WithLevel(logger.InfoLevel))
//	defer log.Close()
//
//	log.AddConsole(os.Stderr)
//	log.AddRotatingFile(filesink.Config{Filename: "app.log"})
//	log.Infof("listening on %d\n", 8080)
//
// Every emitted message becomes one line of the form
//
//	<timestamp> - <LEVEL> - <message>
//
// and no newline is added; the message controls line termination.
//
// A message at level l is emitted iff l is a real level and
// l <= threshold. Filtered calls take no lock and format nothing.
//
// In thread-safe mode a single mutex serializes the whole
// format-and-broadcast step of every call, so lines from different
// goroutines never interleave. Sinks run while the mutex is held: a slow
// sink stalls every producer. Without thread-safe mode the Logger does
// no synchronization at all.
//
// Compose builds a message from typed fragments:
//
//	log.Compose(logger.InfoLevel, func(e *logger.Entry) {
//	    e.Str("user=").Int(42).Str(" took ").Duration(elapsed).Str("\n")
//	})
//
// The lock is released when the callback returns or panics. Logging
// through the same Logger from inside the callback deadlocks in
// thread-safe mode.
//
// The package-level functions delegate to a default Logger that is
// created on first use: thread-safe, allow-all, console sink on
// standard output.
package logger
