package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/philipp01105/disco/core"
	"github.com/philipp01105/disco/formatter"
	"github.com/philipp01105/disco/handler"
	"github.com/philipp01105/disco/handler/consolehandler"
	"github.com/philipp01105/disco/painter"
	"github.com/philipp01105/disco/theme"
)

// messagePlaceholder stands in for the message while the layout is
// assembled in the inline gradient mode. Private-use code points never
// occur in a formatter's own output.
const messagePlaceholder = "\uE000\uE001"

// Logger renders records and hands the finished lines to a Handler.
// Its configuration is fixed at construction; the only mutable state is
// the painter's cursor table and the statistics counters, both safe for
// concurrent use.
type Logger struct {
	handler   handler.Handler
	format    formatter.Formatter
	escaper   formatter.MessageEscaper
	bufFormat formatter.BufferFormatter
	painter   *painter.Painter
	level     core.Level
	target    string
	report    *reporter
	stats     *handler.Stats
	coarse    bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg     Config
	handler handler.Handler
	target  string
	errLog  *zap.Logger
	detect  bool
	coarse  bool
	stdout  io.Writer
	stderr  io.Writer
}

// NewBuilder creates a new logger builder seeded with DefaultConfig
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig()}
}

// WithConfig replaces the render configuration wholesale
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.cfg = cfg
	return b
}

// WithHandler sets the handler. Without one Build creates a
// ConsoleHandler honouring UseStderr.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.cfg.Level = level
	return b
}

// WithFormatter sets the record layout
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.cfg.Format = f
	return b
}

// WithColorFormat sets the colouring strategy
func (b *Builder) WithColorFormat(f painter.ColorFormat) *Builder {
	b.cfg.Color = f
	return b
}

// WithTheme sets the colour theme
func (b *Builder) WithTheme(t theme.Theme) *Builder {
	b.cfg.Theme = t
	return b
}

// WithUseStderr routes Warn and Error to stderr
func (b *Builder) WithUseStderr(enabled bool) *Builder {
	b.cfg.UseStderr = enabled
	return b
}

// WithWriters overrides the streams of the default ConsoleHandler
func (b *Builder) WithWriters(stdout, stderr io.Writer) *Builder {
	b.stdout = stdout
	b.stderr = stderr
	return b
}

// WithTarget sets the target stamped on records logged through the
// Logger's convenience methods
func (b *Builder) WithTarget(target string) *Builder {
	b.target = target
	return b
}

// WithErrorLogger sets where render and write failures are reported.
// Pass zap.NewNop() to silence them.
func (b *Builder) WithErrorLogger(z *zap.Logger) *Builder {
	b.errLog = z
	return b
}

// WithColorDetection downgrades the colour format to None when a stream
// lines are written to has no colour support: stdout always, and stderr
// as well when UseStderr is set
func (b *Builder) WithColorDetection(enabled bool) *Builder {
	b.detect = enabled
	return b
}

// WithCoarseClock stamps records from the coarse clock instead of
// calling time.Now for every record
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarse = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	cfg := b.cfg
	if cfg.Format == nil {
		cfg.Format = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.Theme == nil {
		cfg.Theme = theme.Spectral{}
	}

	stdout, stderr := b.stdout, b.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	h := b.handler
	if h == nil {
		h = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Stdout:    stdout,
			Stderr:    stderr,
			UseStderr: cfg.UseStderr,
		})
	}

	if b.detect && !(colorCapable(stdout) && (!cfg.UseStderr || colorCapable(stderr))) {
		cfg.Color = painter.None()
	}
	if b.coarse {
		core.StartCoarseClock()
	}

	escaper, _ := cfg.Format.(formatter.MessageEscaper)
	bufFormat, _ := cfg.Format.(formatter.BufferFormatter)

	return &Logger{
		handler:   h,
		format:    cfg.Format,
		escaper:   escaper,
		bufFormat: bufFormat,
		painter:   painter.New(cfg.Theme, cfg.Color),
		level:     cfg.Level,
		target:    b.target,
		report:    newReporter(b.errLog),
		stats:     handler.NewStats(),
		coarse:    b.coarse,
	}
}

// New creates a Logger writing to os.Stdout and os.Stderr
func New(cfg Config) *Logger {
	return NewBuilder().WithConfig(cfg).Build()
}

// colorCapable reports whether w accepts ANSI colour, honouring NO_COLOR
// and CLICOLOR_FORCE. It is a variable to allow overriding in tests.
var colorCapable = func(w io.Writer) bool {
	return termenv.NewOutput(w).EnvColorProfile() != termenv.Ascii
}

// Named returns a Logger sharing everything with l except the target
func (l *Logger) Named(target string) *Logger {
	child := *l
	child.target = target
	return &child
}

// Target returns the target stamped on records
func (l *Logger) Target() string { return l.target }

// Level returns the minimum level
func (l *Logger) Level() core.Level { return l.level }

// Enabled reports whether a record at level would be rendered
func (l *Logger) Enabled(level core.Level) bool {
	return level.Valid() && l.level != core.OffLevel && level >= l.level
}

// LogRecord renders rec and writes it. Records below the threshold are
// ignored. A record that cannot be formatted is dropped and reported;
// it never reaches the handler. The record is not retained.
func (l *Logger) LogRecord(rec *core.Record) {
	if rec == nil || !l.Enabled(rec.Level) {
		return
	}

	buf := getBuffer()
	defer putBuffer(buf)

	line, err := l.render(rec, buf)
	if err != nil {
		l.stats.IncrementDropped(rec.Level)
		l.report.dropped(rec, err)
		return
	}

	if err := l.handler.Handle(rec.Level, line); err != nil {
		l.report.writeFailed(rec.Level, err)
	}
}

// bufferPool holds the buffers records are laid out into
var bufferPool = sync.Pool{
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

// render returns the finished line for rec. The result may alias buf.
func (l *Logger) render(rec *core.Record, buf *bytes.Buffer) ([]byte, error) {
	if l.painter.Inline() {
		return l.renderInline(rec, buf)
	}

	b, err := l.formatInto(rec, buf)
	if err != nil {
		return nil, err
	}
	return l.paint(rec.Level, b), nil
}

// formatInto lays rec out, into buf when the formatter supports it
func (l *Logger) formatInto(rec *core.Record, buf *bytes.Buffer) ([]byte, error) {
	if l.bufFormat == nil {
		return l.format.Format(rec)
	}
	buf.Reset()
	if err := l.bufFormat.FormatRecord(rec, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderInline colours only the message, so the structural parts of the
// line stay uncoloured.
//
// Built-in layouts are formatted around a placeholder and the escaped
// message is painted into its slot. Custom formatters always receive the
// real record; the message is painted in place when it appears exactly
// once in their output, otherwise the gradient runs across the whole
// line.
func (l *Logger) renderInline(rec *core.Record, buf *bytes.Buffer) ([]byte, error) {
	if l.escaper != nil {
		probe := *rec
		probe.Message = messagePlaceholder

		layout, err := l.formatInto(&probe, buf)
		if err != nil {
			return nil, err
		}
		if i, ok := indexOnce(layout, messagePlaceholder); ok {
			msg := l.escaper.EscapeMessage(rec.Message)
			return l.splice(rec.Level, layout, i, len(messagePlaceholder), msg), nil
		}
	}

	b, err := l.formatInto(rec, buf)
	if err != nil {
		return nil, err
	}
	if i, ok := indexOnce(b, rec.Message); ok {
		return l.splice(rec.Level, b, i, len(rec.Message), rec.Message), nil
	}
	return l.paint(rec.Level, b), nil
}

// indexOnce returns the offset of sub in b when it occurs exactly once
func indexOnce(b []byte, sub string) (int, bool) {
	if sub == "" {
		return 0, false
	}
	i := bytes.Index(b, []byte(sub))
	if i < 0 || bytes.Contains(b[i+1:], []byte(sub)) {
		return 0, false
	}
	return i, true
}

// splice replaces line[i:i+n] with msg painted by the inline gradient
func (l *Logger) splice(level core.Level, line []byte, i, n int, msg string) []byte {
	painted, err := l.painter.PaintMessage(level, msg)
	if err != nil {
		l.report.palette(level, err)
	}

	var sb strings.Builder
	sb.Grow(len(line) - n + len(painted))
	sb.Write(line[:i])
	sb.WriteString(painted)
	sb.Write(line[i+n:])

	return []byte(l.painter.Emphasize(level, sb.String()))
}

func (l *Logger) paint(level core.Level, b []byte) []byte {
	if l.painter.Format().Mode == painter.ModeNone && !level.Emphasized() {
		return b
	}
	s, err := l.painter.Paint(level, string(b))
	if err != nil {
		l.report.palette(level, err)
	}
	return []byte(s)
}

// Log logs msg at level
func (l *Logger) Log(level core.Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg)
}

func (l *Logger) log(level core.Level, msg string) {
	rec := core.GetRecord()
	if l.coarse {
		rec.Time = core.CoarseNow()
	}
	rec.Level = level
	rec.Target = l.target
	rec.Message = msg

	l.LogRecord(rec)
	core.PutRecord(rec)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Stats returns the handler's counters with records dropped during
// rendering folded in
func (l *Logger) Stats() handler.Snapshot {
	var snap handler.Snapshot
	if sp, ok := l.handler.(handler.StatsProvider); ok {
		snap = sp.Stats()
	} else {
		snap = handler.NewStats().GetSnapshot()
	}

	for _, lvl := range core.Levels {
		d := l.stats.GetDropped(lvl)
		snap.Dropped[lvl] += d
		snap.DroppedTotal += d
	}
	return snap
}

// Close closes the handler and syncs the error logger
func (l *Logger) Close() error {
	var err error
	if l.handler != nil {
		err = multierr.Append(err, l.handler.Close())
	}
	return multierr.Append(err, l.report.sync())
}
