package painter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/philipp01105/disco/theme"
)

func foreground(c theme.RGB) string {
	var b strings.Builder
	writeForeground(&b, c)
	return b.String()
}

func TestWriteForeground_MatchesTermenvFormat(t *testing.T) {
	c := theme.RGB{R: 255, G: 128, B: 0}
	want := termenv.CSI + termenv.RGBColor(c.Hex()).Sequence(false) + "m"
	assert.Equal(t, want, foreground(c))
	assert.Equal(t, "\x1b[38;2;255;128;0m", foreground(c))
}

func TestWriteForeground_EveryChannelValueExact(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := theme.RGB{R: uint8(v), G: uint8(255 - v), B: uint8(v)}
		want := fmt.Sprintf("\x1b[38;2;%d;%d;%dm", v, 255-v, v)
		if got := foreground(c); got != want {
			t.Fatalf("channel %d: got %q, want %q", v, got, want)
		}
	}
}

func TestBold(t *testing.T) {
	assert.Equal(t, "\x1b[1mx\x1b[0m", Bold("x"))
}
