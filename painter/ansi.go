package painter

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/philipp01105/disco/theme"
)

var (
	resetSeq = termenv.CSI + termenv.ResetSeq + "m"
	boldSeq  = termenv.CSI + termenv.BoldSeq + "m"
	// trueColorPrefix is ESC[38;2; for a 24-bit foreground
	trueColorPrefix = termenv.CSI + termenv.Foreground + ";2;"
)

// writeForeground writes ESC[38;2;R;G;Bm.
//
// termenv.RGBColor.Sequence round-trips channels through float64 and
// truncates, turning e.g. 33 into 32, so the channels are written from
// the integer values directly.
func writeForeground(b *strings.Builder, c theme.RGB) {
	b.WriteString(trueColorPrefix)
	b.WriteString(strconv.Itoa(int(c.R)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.G)))
	b.WriteByte(';')
	b.WriteString(strconv.Itoa(int(c.B)))
	b.WriteByte('m')
}

// Bold returns s wrapped in the bold attribute
func Bold(s string) string {
	return boldSeq + s + resetSeq
}
