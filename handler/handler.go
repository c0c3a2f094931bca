package handler

import (
	"errors"

	"github.com/philipp01105/disco/core"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes one rendered line for a record at level. The line
	// carries no trailing newline; the handler frames it.
	Handle(level core.Level, line []byte) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that keep write statistics
type StatsProvider interface {
	Stats() Snapshot
}
