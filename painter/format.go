package painter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColorFormat is returned by ParseColorFormat for unknown names
var ErrUnknownColorFormat = errors.New("unknown color format")

// Mode selects a colouring strategy
type Mode uint8

const (
	// ModeNone applies no colour; Warn and Error are still bold
	ModeNone Mode = iota
	// ModeSolid colours every line with the level's anchor colour
	ModeSolid
	// ModeInlineGradient walks the palette across the characters of a message
	ModeInlineGradient
	// ModeMultiLineGradient walks the palette across successive lines of a level
	ModeMultiLineGradient
)

// ColorFormat is a colouring strategy plus, for gradients, the number of
// ticks it takes to cross the palette once
type ColorFormat struct {
	Mode  Mode
	Steps int
}

// None returns the uncoloured format
func None() ColorFormat { return ColorFormat{Mode: ModeNone} }

// Solid returns the single-colour format
func Solid() ColorFormat { return ColorFormat{Mode: ModeSolid} }

// InlineGradient returns a per-character gradient that takes steps
// characters to go from the first palette colour to the last
func InlineGradient(steps int) ColorFormat {
	return ColorFormat{Mode: ModeInlineGradient, Steps: steps}
}

// MultiLineGradient returns a per-line gradient that takes steps lines
// of the same level to go from the first palette colour to the last
func MultiLineGradient(steps int) ColorFormat {
	return ColorFormat{Mode: ModeMultiLineGradient, Steps: steps}
}

// Gradient reports whether the format uses a cursor
func (f ColorFormat) Gradient() bool {
	return f.Mode == ModeInlineGradient || f.Mode == ModeMultiLineGradient
}

// String returns the string representation of the format
func (f ColorFormat) String() string {
	switch f.Mode {
	case ModeNone:
		return "none"
	case ModeSolid:
		return "solid"
	case ModeInlineGradient:
		return fmt.Sprintf("inline(%d)", f.Steps)
	case ModeMultiLineGradient:
		return fmt.Sprintf("multiline(%d)", f.Steps)
	default:
		return "unknown"
	}
}

// ParseColorFormat builds a ColorFormat from a config name. steps is
// only consulted for gradients and must be positive there.
func ParseColorFormat(name string, steps int) (ColorFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None(), nil
	case "solid":
		return Solid(), nil
	case "inline", "inline_gradient", "inline-gradient":
		if steps < 1 {
			return ColorFormat{}, fmt.Errorf("inline gradient needs a positive step count, got %d", steps)
		}
		return InlineGradient(steps), nil
	case "multiline", "multi_line_gradient", "multi-line-gradient":
		if steps < 1 {
			return ColorFormat{}, fmt.Errorf("multi-line gradient needs a positive step count, got %d", steps)
		}
		return MultiLineGradient(steps), nil
	default:
		return ColorFormat{}, fmt.Errorf("%w: %q", ErrUnknownColorFormat, name)
	}
}
