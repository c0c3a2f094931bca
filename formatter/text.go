package formatter

import (
	"bytes"

	"github.com/philipp01105/disco/core"
)

// TextFormatter formats records as `{time} [{target}] {LEVEL} - {message}`
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	cfg.TimestampFormat = timestampLayout(cfg)
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	return formatPooled(rec, f.FormatRecord)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelDashes = [...]string{
	core.TraceLevel: "] TRACE - ",
	core.DebugLevel: "] DEBUG - ",
	core.InfoLevel:  "] INFO - ",
	core.WarnLevel:  "] WARN - ",
	core.ErrorLevel: "] ERROR - ",
}

// FormatRecord writes the formatted record into buf (implements BufferFormatter)
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) error {
	if err := appendTimestamp(buf, rec.Time, f.TimestampFormat); err != nil {
		return err
	}

	buf.WriteString(" [")
	buf.WriteString(rec.Target)

	if rec.Level.Valid() {
		buf.WriteString(levelDashes[rec.Level])
	} else {
		buf.WriteString("] ")
		buf.WriteString(rec.Level.String())
		buf.WriteString(" - ")
	}

	buf.WriteString(rec.Message)
	return nil
}

// EscapeMessage implements MessageEscaper. Text output carries the
// message verbatim.
func (f *TextFormatter) EscapeMessage(msg string) string {
	return msg
}
