package formatter

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/philipp01105/disco/core"
)

// ErrTimestampRange is returned for timestamps whose year cannot be
// written as four ISO-8601 digits
var ErrTimestampRange = errors.New("timestamp out of ISO-8601 range")

// DefaultTimestampFormat is UTC ISO-8601 with all nine fractional digits
const DefaultTimestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Formatter lays out a record as a single line without a trailing newline
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a log record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer) error
}

// MessageEscaper is implemented by layouts that emit the message
// exactly once, exactly as EscapeMessage returns it, with nothing else
// derived from it. The inline gradient relies on this to lay the record
// out around a stand-in message and colour the escaped form in place.
// Custom formatters do not implement it and always see the real record.
type MessageEscaper interface {
	EscapeMessage(msg string) string
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
}

// Func adapts a plain function into a Formatter. The function receives
// the record as-is; a panic inside it is not recovered.
type Func func(rec *core.Record) string

// Format implements Formatter
func (f Func) Format(rec *core.Record) ([]byte, error) {
	return []byte(f(rec)), nil
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatPooled runs fn against a pooled buffer and returns a copy of the result
func formatPooled(rec *core.Record, fn func(*core.Record, *bytes.Buffer) error) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := fn(rec, buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// appendTimestamp writes t in UTC using layout
func appendTimestamp(buf *bytes.Buffer, t time.Time, layout string) error {
	t = t.UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return fmt.Errorf("%w: year %d", ErrTimestampRange, y)
	}
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), layout))
	return nil
}

func timestampLayout(cfg Config) string {
	if cfg.TimestampFormat == "" {
		return DefaultTimestampFormat
	}
	return cfg.TimestampFormat
}
