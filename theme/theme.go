package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/philipp01105/disco/core"
)

// ErrUnknownTheme is returned by Lookup for names it does not recognise
var ErrUnknownTheme = errors.New("unknown theme")

// Theme maps each severity level to an ordered, non-empty colour palette.
// Implementations must be safe for concurrent use; the built-ins are
// immutable values.
type Theme interface {
	ColorsFor(level core.Level) []RGB
}

// Anchored is an optional interface a Theme can implement to pick the
// colour used by the solid colour format. Themes without it anchor on
// the first colour of each palette.
type Anchored interface {
	Anchor(level core.Level) RGB
}

// Spectral sweeps five colours per level around the level's hue
type Spectral struct{}

var spectral = [...][]RGB{
	core.TraceLevel: {DarkMagenta, Magenta, Pink, DarkPink, DarkBlue},
	core.DebugLevel: {DarkBlue, Blue, Cyan, DarkCyan, DarkGreen},
	core.InfoLevel:  {DarkGreen, Green, Yellow, Cyan, DarkCyan},
	core.WarnLevel:  {DarkYellow, Yellow, Orange, DarkOrange, Red},
	core.ErrorLevel: {DarkRed, Red, DarkOrange, Magenta, DarkMagenta},
}

// ColorsFor implements Theme
func (Spectral) ColorsFor(level core.Level) []RGB {
	if !level.Valid() {
		return spectral[core.InfoLevel]
	}
	return spectral[level]
}

// Duotone gives each level a dark and a light shade of one hue
type Duotone struct{}

var duotone = [...][]RGB{
	core.TraceLevel: {DarkPink, Pink},
	core.DebugLevel: {DarkCyan, Cyan},
	core.InfoLevel:  {DarkGreen, Green},
	core.WarnLevel:  {DarkOrange, Orange},
	core.ErrorLevel: {DarkRed, Red},
}

// ColorsFor implements Theme
func (Duotone) ColorsFor(level core.Level) []RGB {
	if !level.Valid() {
		return duotone[core.InfoLevel]
	}
	return duotone[level]
}

// Palette is a user-defined Theme backed by a map. Levels missing from
// the map resolve to an empty palette, which the painter reports as a
// configuration error and renders uncoloured.
type Palette map[core.Level][]RGB

// ColorsFor implements Theme
func (p Palette) ColorsFor(level core.Level) []RGB {
	return p[level]
}

// ParsePalette builds a Palette from level names to hex colour lists
func ParsePalette(raw map[string][]string) (Palette, error) {
	p := make(Palette, len(raw))
	for name, hexes := range raw {
		level, err := core.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		if !level.Valid() {
			return nil, fmt.Errorf("palette for %s: %w", level, core.ErrUnknownLevel)
		}
		colors := make([]RGB, 0, len(hexes))
		for _, h := range hexes {
			c, err := ParseHex(h)
			if err != nil {
				return nil, fmt.Errorf("palette for %s: %w", level, err)
			}
			colors = append(colors, c)
		}
		p[level] = colors
	}
	return p, nil
}

// Lookup resolves a built-in theme by name
func Lookup(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "spectral":
		return Spectral{}, nil
	case "duotone":
		return Duotone{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// AnchorFor returns the solid colour for level under t
func AnchorFor(t Theme, level core.Level) (RGB, bool) {
	if a, ok := t.(Anchored); ok {
		return a.Anchor(level), true
	}
	colors := t.ColorsFor(level)
	if len(colors) == 0 {
		return RGB{}, false
	}
	return colors[0], true
}
