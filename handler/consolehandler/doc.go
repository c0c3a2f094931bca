// Package consolehandler provides the handler that writes rendered lines
// to the process's standard streams.
//
// With UseStderr unset every line goes to stdout. With it set, Trace,
// Debug and Info go to stdout while Warn and Error go to stderr. Both
// writers are configurable so tests and callers can substitute buffers.
//
// Writes are serialized by one mutex shared by both streams: a terminal
// shows stdout and stderr interleaved, and a shared lock keeps a line on
// one stream from landing in the middle of a line on the other.
package consolehandler
