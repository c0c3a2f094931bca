package theme

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned by ParseHex for malformed colour strings
var ErrInvalidHex = errors.New("invalid hex colour")

// RGB is a 24-bit colour
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses "#rrggbb" or "rrggbb"
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Lerp interpolates linearly between c1 and c2. t is clamped to [0, 1]
// and every channel is rounded to the nearest integer.
func Lerp(c1, c2 RGB, t float64) RGB {
	switch {
	case t <= 0 || math.IsNaN(t):
		return c1
	case t >= 1:
		return c2
	}
	return RGB{
		R: lerpChannel(c1.R, c2.R, t),
		G: lerpChannel(c1.G, c2.G, t),
		B: lerpChannel(c1.B, c2.B, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Named colours used by the built-in themes
var (
	DarkMagenta = RGB{139, 0, 139}
	Magenta     = RGB{255, 0, 255}
	DarkPink    = RGB{149, 119, 149}
	Pink        = RGB{227, 184, 227}
	DarkCyan    = RGB{10, 144, 144}
	Cyan        = RGB{20, 210, 210}
	DarkBlue    = RGB{70, 75, 185}
	Blue        = RGB{90, 100, 240}
	DarkGreen   = RGB{70, 140, 10}
	Green       = RGB{110, 220, 10}
	DarkYellow  = RGB{170, 128, 0}
	Yellow      = RGB{255, 185, 0}
	DarkOrange  = RGB{255, 128, 0}
	Orange      = RGB{250, 180, 110}
	DarkRed     = RGB{200, 0, 10}
	Red         = RGB{255, 60, 10}
)
