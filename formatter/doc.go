// Package formatter builds the final log line handed to every sink:
//
//	<timestamp> - <LEVEL> - <message>
//
// The timestamp uses a strftime pattern (default "%m/%d/%Y-%H:%M:%S")
// compiled once per formatter. Rendering uses a dynamically sized
// buffer, so long patterns are never truncated. A pattern that fails to
// compile does not abort logging; the timestamp field is left empty and
// the compile error is available from Err.
//
// Sentinel levels have no name and are rejected with ErrSentinelLevel
// instead of producing a malformed line.
//
// Lines are assembled in a pooled bytes.Buffer. Buffers larger than
// 64 KiB are not returned to the pool so a single large message does not
// permanently inflate memory usage.
package formatter
