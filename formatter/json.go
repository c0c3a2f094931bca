package formatter

import (
	"bytes"
	"unicode/utf8"

	"github.com/philipp01105/disco/core"
)

// JSONFormatter formats records as a single-line JSON object with the
// string keys time, level, target and message, in that order
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	cfg.TimestampFormat = timestampLayout(cfg)
	return &JSONFormatter{Config: cfg}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	return formatPooled(rec, f.FormatRecord)
}

// FormatRecord formats a record as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) error {
	buf.WriteString(`{"time":"`)
	if err := appendTimestamp(buf, rec.Time, f.TimestampFormat); err != nil {
		return err
	}

	buf.WriteString(`","level":"`)
	buf.WriteString(rec.Level.String())

	buf.WriteString(`","target":"`)
	appendJSONString(buf, rec.Target)

	buf.WriteString(`","message":"`)
	appendJSONString(buf, rec.Message)

	buf.WriteString(`"}`)
	return nil
}

// EscapeMessage returns msg as it appears between the message quotes
func (f *JSONFormatter) EscapeMessage(msg string) string {
	buf := getBuffer()
	defer putBuffer(buf)
	appendJSONString(buf, msg)
	return buf.String()
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer.
// Invalid UTF-8 bytes are replaced with \ufffd so the output stays valid JSON.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			// Flush unescaped prefix
			if start < i {
				buf.WriteString(s[start:i])
			}
			switch c {
			case '"':
				buf.WriteString(`\"`)
			case '\\':
				buf.WriteString(`\\`)
			case '\n':
				buf.WriteString(`\n`)
			case '\r':
				buf.WriteString(`\r`)
			case '\t':
				buf.WriteString(`\t`)
			default:
				buf.WriteString(`\u00`)
				buf.WriteByte(hexChars[c>>4])
				buf.WriteByte(hexChars[c&0x0f])
			}
			i++
			start = i
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if start < i {
				buf.WriteString(s[start:i])
			}
			buf.WriteString(`\ufffd`)
			i++
			start = i
			continue
		}
		i += size
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
