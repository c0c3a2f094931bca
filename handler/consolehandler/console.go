package consolehandler

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/philipp01105/disco/core"
	"github.com/philipp01105/disco/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Stdout receives Trace, Debug and Info, and everything else unless
	// UseStderr is set (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives Warn and Error when UseStderr is set (default: os.Stderr)
	Stderr io.Writer
	// UseStderr splits Warn and Error onto Stderr
	UseStderr bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
}

// flusher is implemented by buffered writers such as *bufio.Writer
type flusher interface {
	Flush() error
}

// ConsoleHandler writes rendered lines to stdout and stderr. Each line
// is written with a single Write call under mu, so lines from concurrent
// callers never interleave, on one stream or across the two.
type ConsoleHandler struct {
	stdout    io.Writer
	stderr    io.Writer
	useStderr bool
	mu        sync.Mutex
	stats     *handler.Stats
	closed    atomic.Bool
	bufPool   sync.Pool
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)
	return &ConsoleHandler{
		stdout:    cfg.Stdout,
		stderr:    cfg.Stderr,
		useStderr: cfg.UseStderr,
		stats:     handler.NewStats(),
		bufPool: sync.Pool{
			New: func() interface{} {
				b := new(bytes.Buffer)
				b.Grow(256)
				return b
			},
		},
	}
}

// Route returns the writer a line at level goes to and its name
func (h *ConsoleHandler) Route(level core.Level) (io.Writer, string) {
	if h.useStderr && level.Emphasized() {
		return h.stderr, "stderr"
	}
	return h.stdout, "stdout"
}

// Handle writes line plus a newline to the stream chosen for level
func (h *ConsoleHandler) Handle(level core.Level, line []byte) error {
	if h.closed.Load() {
		return handler.ErrClosed
	}

	w, name := h.Route(level)

	buf := h.bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(line)
	buf.WriteByte('\n')

	h.mu.Lock()
	_, err := w.Write(buf.Bytes())
	h.mu.Unlock()

	if buf.Cap() <= 64*1024 {
		h.bufPool.Put(buf)
	}

	if err != nil {
		h.stats.IncrementFailed(level)
		return fmt.Errorf("write %s: %w", name, err)
	}
	h.stats.IncrementProcessed(level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes buffered writers. Further Handle calls return
// handler.ErrClosed.
func (h *ConsoleHandler) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return nil // Already closed
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if f, ok := h.stdout.(flusher); ok {
		err = multierr.Append(err, f.Flush())
	}
	if !sameWriter(h.stderr, h.stdout) {
		if f, ok := h.stderr.(flusher); ok {
			err = multierr.Append(err, f.Flush())
		}
	}
	return err
}

// sameWriter reports whether a and b are the same writer. Writers with
// uncomparable dynamic types are treated as distinct.
func sameWriter(a, b io.Writer) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}
