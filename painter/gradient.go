package painter

import (
	"errors"

	"github.com/philipp01105/disco/theme"
)

// ErrEmptyPalette is reported when a theme has no colours for a level
var ErrEmptyPalette = errors.New("theme has an empty palette")

// ColorAt returns the colour at position out of steps along the whole
// palette: position 0 is the first colour and position steps the last.
// The adjacent pair that brackets the position is interpolated linearly.
func ColorAt(palette []theme.RGB, position, steps int) (theme.RGB, error) {
	n := len(palette)
	switch {
	case n == 0:
		return theme.RGB{}, ErrEmptyPalette
	case n == 1:
		return palette[0], nil
	}
	if steps < 1 {
		steps = 1
	}

	f := float64(position) / float64(steps) * float64(n-1)
	if f <= 0 {
		return palette[0], nil
	}
	if f >= float64(n-1) {
		return palette[n-1], nil
	}

	i := int(f)
	return theme.Lerp(palette[i], palette[i+1], f-float64(i)), nil
}
