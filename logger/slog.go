package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/disco/core"
)

// targetKey is the attribute that overrides the record target
const targetKey = "target"

// SlogHandler is an adapter that implements slog.Handler on top of a
// Logger, so code written against log/slog renders through disco.
// Attributes other than "target" are appended to the message as
// key=value pairs.
type SlogHandler struct {
	logger *Logger
	target string
	attrs  string
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter for l
func NewSlogHandler(l *Logger) *SlogHandler {
	return &SlogHandler{
		logger: l,
		target: l.target,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.logger.Enabled(slogLevelToCore(level))
}

// Handle converts a slog.Record to a core.Record and renders it
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	rec := core.GetRecord()
	defer core.PutRecord(rec)

	if !record.Time.IsZero() {
		rec.Time = record.Time.UTC()
	}
	rec.Level = slogLevelToCore(record.Level)
	rec.Target = s.target

	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(s.attrs)
	record.Attrs(func(a slog.Attr) bool {
		if s.group == "" && a.Key == targetKey {
			rec.Target = a.Value.Resolve().String()
			return true
		}
		appendAttr(&sb, s.group, a)
		return true
	})
	rec.Message = sb.String()

	s.logger.LogRecord(rec)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	child := *s
	var sb strings.Builder
	sb.WriteString(s.attrs)
	for _, a := range attrs {
		if s.group == "" && a.Key == targetKey {
			child.target = a.Value.Resolve().String()
			continue
		}
		appendAttr(&sb, s.group, a)
	}
	child.attrs = sb.String()
	return &child
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	child := *s
	if s.group != "" {
		child.group = s.group + "." + name
	} else {
		child.group = name
	}
	return &child
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr writes " key=value" for a, prefixing the key with group and
// flattening nested groups
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	switch a.Value.Kind() {
	case slog.KindString:
		v := a.Value.String()
		if v == "" || strings.ContainsAny(v, " =\"") {
			fmt.Fprintf(sb, "%q", v)
		} else {
			sb.WriteString(v)
		}
	default:
		sb.WriteString(a.Value.String())
	}
}
