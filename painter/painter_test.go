package painter

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/disco/core"
	"github.com/philipp01105/disco/theme"
)

const (
	esc   = "\x1b["
	reset = "\x1b[0m"
	bold  = "\x1b[1m"
)

var greyscale = theme.Palette{
	core.TraceLevel: {black, white},
	core.DebugLevel: {black, white},
	core.InfoLevel:  {black, white},
	core.WarnLevel:  {black, white},
	core.ErrorLevel: {black, white},
}

func TestPaint_None(t *testing.T) {
	p := New(theme.Spectral{}, None())

	for _, l := range []core.Level{core.TraceLevel, core.DebugLevel, core.InfoLevel} {
		out, err := p.Paint(l, "foo")
		require.NoError(t, err)
		assert.Equal(t, "foo", out, l.String())
	}
	for _, l := range []core.Level{core.WarnLevel, core.ErrorLevel} {
		out, err := p.Paint(l, "foo")
		require.NoError(t, err)
		assert.Equal(t, bold+"foo"+reset, out, l.String())
	}
}

func TestPaint_Solid(t *testing.T) {
	p := New(theme.Duotone{}, Solid())

	out, err := p.Paint(core.InfoLevel, "foo")
	require.NoError(t, err)
	assert.Equal(t, esc+"38;2;70;140;10m"+"foo"+reset, out)

	out, err = p.Paint(core.ErrorLevel, "foo")
	require.NoError(t, err)
	assert.Equal(t, bold+esc+"38;2;200;0;10m"+"foo"+reset, out)

	// solid never moves
	again, _ := p.Paint(core.ErrorLevel, "foo")
	assert.Equal(t, out, again)
}

func TestPaint_ColorsByLevel(t *testing.T) {
	formats := []ColorFormat{Solid(), InlineGradient(20), MultiLineGradient(20)}
	for _, f := range formats {
		p := New(theme.Duotone{}, f)
		seen := map[string]core.Level{}
		for _, l := range core.Levels {
			out, err := p.Paint(l, "foo")
			require.NoError(t, err)
			if prev, dup := seen[out]; dup {
				t.Errorf("%s: %s and %s rendered identically: %q", f, prev, l, out)
			}
			seen[out] = l
		}
	}
}

func TestPaint_MultiLineGradient(t *testing.T) {
	p := New(greyscale, MultiLineGradient(2))

	var lines []string
	for i := 0; i < 8; i++ {
		out, err := p.Paint(core.InfoLevel, "foo")
		require.NoError(t, err)
		lines = append(lines, out)
	}

	assert.Equal(t, esc+"38;2;0;0;0mfoo"+reset, lines[0])
	assert.Equal(t, esc+"38;2;128;128;128mfoo"+reset, lines[1])
	assert.Equal(t, esc+"38;2;255;255;255mfoo"+reset, lines[2])
	assert.Equal(t, lines[1], lines[3])

	// the gradient restarts after 2*steps lines
	assert.NotEqual(t, lines[0], lines[1])
	for i := 0; i < 4; i++ {
		assert.Equal(t, lines[i], lines[i+4], "line %d", i)
	}
}

func TestPaint_MultiLineGradientLevelsIndependent(t *testing.T) {
	p := New(greyscale, MultiLineGradient(4))

	for i := 0; i < 3; i++ {
		_, _ = p.Paint(core.InfoLevel, "foo")
	}
	debug, err := p.Paint(core.DebugLevel, "foo")
	require.NoError(t, err)
	assert.Equal(t, esc+"38;2;0;0;0mfoo"+reset, debug)

	info := p.cursor(core.InfoLevel)
	assert.Equal(t, 3, info.Position())
	warn := p.cursor(core.WarnLevel)
	assert.Equal(t, 0, warn.Position())
}

func TestPaint_MultiLineChangesWithinLevel(t *testing.T) {
	p := New(theme.Spectral{}, MultiLineGradient(20))
	for _, l := range core.Levels {
		last := ""
		for i := 0; i < 10; i++ {
			out, err := p.Paint(l, "foo")
			require.NoError(t, err)
			assert.NotEqual(t, last, out)
			last = out
		}
	}
}

func TestPaintMessage_InlineGradient(t *testing.T) {
	p := New(greyscale, InlineGradient(2))

	out, err := p.PaintMessage(core.InfoLevel, "abcde")
	require.NoError(t, err)
	want := esc + "38;2;0;0;0ma" + reset +
		esc + "38;2;128;128;128mb" + reset +
		esc + "38;2;255;255;255mc" + reset +
		esc + "38;2;128;128;128md" + reset +
		esc + "38;2;0;0;0me" + reset
	assert.Equal(t, want, out)

	// every message starts from the first colour
	again, err := p.PaintMessage(core.InfoLevel, "abcde")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestPaintMessage_StepsRestart(t *testing.T) {
	p := New(theme.Duotone{}, InlineGradient(2))

	for _, msg := range []string{"0000000000", "नमस्तेनमस्तेनमस्तेनमस्तेनमस्ते"} {
		out, err := p.PaintMessage(core.InfoLevel, msg)
		require.NoError(t, err)

		seqs := escapes(out)
		require.GreaterOrEqual(t, len(seqs), 8, msg)
		assert.NotEqual(t, seqs[0], seqs[1])
		for i := 0; i < 4; i++ {
			assert.Equal(t, seqs[i], seqs[i+4], "%q grapheme %d", msg, i)
		}
	}
}

func TestPaintMessage_Graphemes(t *testing.T) {
	p := New(greyscale, InlineGradient(4))

	// e + combining acute accent is one grapheme and gets one colour
	out, err := p.PaintMessage(core.InfoLevel, "e\u0301x")
	require.NoError(t, err)
	assert.Len(t, escapes(out), 2)
	assert.Contains(t, out, "e\u0301"+reset)
}

func TestPaintMessage_ControlCharacters(t *testing.T) {
	p := New(greyscale, InlineGradient(2))

	out, err := p.PaintMessage(core.InfoLevel, "a\tb\nc")
	require.NoError(t, err)
	want := esc + "38;2;0;0;0ma" + reset + "\t" +
		esc + "38;2;128;128;128mb" + reset + "\n" +
		esc + "38;2;255;255;255mc" + reset
	assert.Equal(t, want, out)

	// whitespace advances like any printable character
	out, err = p.PaintMessage(core.InfoLevel, "a b")
	require.NoError(t, err)
	assert.Len(t, escapes(out), 3)
}

func TestPaintMessage_Bold(t *testing.T) {
	p := New(greyscale, InlineGradient(2))

	out, err := p.PaintMessage(core.WarnLevel, "ab")
	require.NoError(t, err)
	want := bold + esc + "38;2;0;0;0ma" + reset +
		bold + esc + "38;2;128;128;128mb" + reset + bold
	assert.Equal(t, want, out)

	full, err := p.Paint(core.WarnLevel, "ab")
	require.NoError(t, err)
	assert.Equal(t, bold+want+reset, full)
}

func TestPaint_EmptyMessage(t *testing.T) {
	for _, f := range []ColorFormat{None(), Solid(), InlineGradient(10), MultiLineGradient(10)} {
		p := New(theme.Duotone{}, f)
		_, err := p.Paint(core.WarnLevel, "")
		assert.NoError(t, err, f.String())
	}
	p := New(theme.Duotone{}, InlineGradient(10))
	out, err := p.PaintMessage(core.InfoLevel, "")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestPaint_EmptyPaletteFallsBack(t *testing.T) {
	broken := theme.Palette{core.InfoLevel: {white}}

	for _, f := range []ColorFormat{Solid(), InlineGradient(4), MultiLineGradient(4)} {
		p := New(broken, f)

		out, err := p.Paint(core.ErrorLevel, "boom")
		assert.True(t, errors.Is(err, ErrEmptyPalette), f.String())
		assert.Equal(t, bold+"boom"+reset, out, f.String())

		out, err = p.Paint(core.DebugLevel, "quiet")
		assert.True(t, errors.Is(err, ErrEmptyPalette), f.String())
		assert.Equal(t, "quiet", out, f.String())

		// other levels are unaffected
		out, err = p.Paint(core.InfoLevel, "fine")
		require.NoError(t, err, f.String())
		assert.Contains(t, out, "38;2;255;255;255m")
	}
}

func TestNew_DefaultTheme(t *testing.T) {
	p := New(nil, Solid())
	assert.IsType(t, theme.Spectral{}, p.Theme())
	assert.Equal(t, Solid(), p.Format())
	assert.False(t, p.Inline())
	assert.True(t, New(nil, InlineGradient(3)).Inline())
}

// N goroutines advancing the same level must produce exactly the
// positions a single goroutine would, with none lost or duplicated.
func TestPainter_ConcurrentCursor(t *testing.T) {
	const (
		workers = 8
		perG    = 500
		steps   = 7
	)
	p := New(greyscale, MultiLineGradient(steps))

	var (
		mu  sync.Mutex
		got []int
	)
	start := make(chan struct{})
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			<-start
			local := make([]int, 0, perG)
			for i := 0; i < perG; i++ {
				_, pos, err := p.next(core.InfoLevel)
				if err != nil {
					return err
				}
				local = append(local, pos)
			}
			mu.Lock()
			got = append(got, local...)
			mu.Unlock()
			return nil
		})
	}
	close(start)
	require.NoError(t, g.Wait())

	ref := NewCursor(steps)
	want := make([]int, 0, workers*perG)
	for i := 0; i < workers*perG; i++ {
		want = append(want, ref.Advance())
	}

	sort.Ints(got)
	sort.Ints(want)
	assert.Equal(t, want, got)
	assert.Equal(t, ref, p.cursor(core.InfoLevel))
}

// escapes returns the colour escape sequences in s, in order
func escapes(s string) []string {
	var out []string
	for {
		i := strings.Index(s, esc+"38;2;")
		if i < 0 {
			return out
		}
		s = s[i:]
		j := strings.IndexByte(s, 'm')
		out = append(out, s[:j+1])
		s = s[j+1:]
	}
}
