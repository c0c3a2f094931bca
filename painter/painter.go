package painter

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/philipp01105/disco/core"
	"github.com/philipp01105/disco/theme"
)

// Painter colours rendered lines with a Theme according to a ColorFormat.
//
// The per-level cursor table used by the multi-line gradient is owned by
// the Painter and guarded by mu; everything else is immutable, so a
// Painter is safe for concurrent use.
type Painter struct {
	theme  theme.Theme
	format ColorFormat

	mu      sync.Mutex
	cursors [len(core.Levels)]Cursor
}

// New creates a Painter. A nil theme falls back to theme.Spectral.
func New(t theme.Theme, f ColorFormat) *Painter {
	if t == nil {
		t = theme.Spectral{}
	}
	p := &Painter{theme: t, format: f}
	for i := range p.cursors {
		p.cursors[i] = NewCursor(f.Steps)
	}
	return p
}

// Format returns the colour format this painter applies
func (p *Painter) Format() ColorFormat { return p.format }

// Theme returns the theme this painter reads from
func (p *Painter) Theme() theme.Theme { return p.theme }

// Inline reports whether colour is applied to the message before the
// structural layout is assembled
func (p *Painter) Inline() bool { return p.format.Mode == ModeInlineGradient }

// Paint colours a whole assembled line. In the inline mode the gradient
// runs across the whole line, which is what callers get when the message
// cannot be located inside the layout.
//
// When the theme has no colours for level the line is returned
// uncoloured (still bold for Warn and Error) together with an error
// wrapping ErrEmptyPalette.
func (p *Painter) Paint(level core.Level, line string) (string, error) {
	switch p.format.Mode {
	case ModeSolid:
		c, ok := theme.AnchorFor(p.theme, level)
		if !ok {
			return p.Emphasize(level, line), emptyPalette(level)
		}
		return p.solid(level, c, line), nil

	case ModeMultiLineGradient:
		c, _, err := p.next(level)
		if err != nil {
			return p.Emphasize(level, line), err
		}
		return p.solid(level, c, line), nil

	case ModeInlineGradient:
		s, err := p.PaintMessage(level, line)
		return p.Emphasize(level, s), err

	default:
		return p.Emphasize(level, line), nil
	}
}

// PaintMessage applies the inline gradient to msg, one colour escape per
// printable grapheme cluster. Control characters pass through uncoloured
// and do not move the gradient; whitespace does. Every message starts
// from the first palette colour.
func (p *Painter) PaintMessage(level core.Level, msg string) (string, error) {
	palette := p.theme.ColorsFor(level)
	if len(palette) == 0 {
		return msg, emptyPalette(level)
	}
	if msg == "" {
		return msg, nil
	}

	bold := level.Emphasized()
	cur := NewCursor(p.format.Steps)

	var b strings.Builder
	b.Grow(len(msg) * 24)

	colored := false
	state := -1
	rest := msg
	for len(rest) > 0 {
		var g string
		g, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if isControl(g) {
			b.WriteString(g)
			continue
		}

		c, err := ColorAt(palette, cur.Advance(), cur.Steps())
		if err != nil {
			return msg, err
		}
		if bold {
			b.WriteString(boldSeq)
		}
		writeForeground(&b, c)
		b.WriteString(g)
		b.WriteString(resetSeq)
		colored = true
	}

	// the resets above clear bold for whatever follows the message
	if bold && colored {
		b.WriteString(boldSeq)
	}
	return b.String(), nil
}

// Emphasize wraps s in the bold attribute for Warn and Error
func (p *Painter) Emphasize(level core.Level, s string) string {
	if !level.Emphasized() {
		return s
	}
	return Bold(s)
}

func (p *Painter) solid(level core.Level, c theme.RGB, s string) string {
	var b strings.Builder
	b.Grow(len(s) + 32)
	if level.Emphasized() {
		b.WriteString(boldSeq)
	}
	writeForeground(&b, c)
	b.WriteString(s)
	b.WriteString(resetSeq)
	return b.String()
}

// next advances the multi-line cursor for level and returns the colour
// for the position it was on, along with that position
func (p *Painter) next(level core.Level) (theme.RGB, int, error) {
	palette := p.theme.ColorsFor(level)
	if len(palette) == 0 {
		return theme.RGB{}, 0, emptyPalette(level)
	}

	i := cursorIndex(level)
	p.mu.Lock()
	pos := p.cursors[i].Advance()
	steps := p.cursors[i].Steps()
	p.mu.Unlock()

	c, err := ColorAt(palette, pos, steps)
	return c, pos, err
}

// cursor returns a copy of the cursor for level
func (p *Painter) cursor(level core.Level) Cursor {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursors[cursorIndex(level)]
}

func cursorIndex(level core.Level) int {
	if !level.Valid() {
		return int(core.InfoLevel)
	}
	return int(level)
}

func isControl(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return unicode.IsControl(r)
}

func emptyPalette(level core.Level) error {
	return fmt.Errorf("%w for level %s", ErrEmptyPalette, level)
}
