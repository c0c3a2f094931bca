// Package formatter lays out log records as single lines of text.
//
// Formatter returns the structural line without a trailing newline; the
// handler adds it when writing. Three layouts are provided:
// TextFormatter ("{time} [{target}] {LEVEL} - {message}"), JSONFormatter
// (one object with string values for time, level, target and message)
// and Func, which wraps any caller-supplied function.
//
// Both built-in formatters also implement BufferFormatter and write into
// a pooled bytes.Buffer using time.AppendFormat, so the common path does
// not allocate intermediate strings. Buffers larger than 64 KiB are not
// returned to the pool.
//
// Timestamps are always rendered in UTC. Years outside 0000-9999 produce
// ErrTimestampRange and the record is dropped by the caller.
package formatter
