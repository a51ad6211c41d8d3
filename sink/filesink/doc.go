// Package filesink provides a sink that writes formatted lines to a file
// and rolls over to a new file once a size budget is exceeded.
//
// Open appends to the configured path and seeds the running size with
// the file's current length. When rotation is enabled (the default) and
// the running size is above MaxBytes (default 5 MiB), the next Append
// closes the current file and opens a fresh, truncated one whose name is
// the original path with "_YYYYMMDD_HHMMSS_<index>" inserted before the
// extension:
//
//	app.log -> app_20260218_130405_1.log -> app_20260218_131502_2.log
//
// The index belongs to the sink, grows on every rotation attempt and is
// never reset, so names stay unique within one second. The original file
// is never renamed.
//
// If the new file cannot be opened the sink is left without a file; the
// line is dropped and every later Append retries the rotation with the
// next index. Failures are reported to the configured zap logger.
//
// With DisableRotation the file grows without bound.
package filesink
