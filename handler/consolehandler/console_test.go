package consolehandler

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/disco/core"
	"github.com/philipp01105/disco/handler"
)

func TestConsoleHandler_AllToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Stdout: &stdout, Stderr: &stderr, UseStderr: false})
	defer h.Close()

	for _, l := range core.Levels {
		require.NoError(t, h.Handle(l, []byte(l.String())))
	}

	assert.Equal(t, "TRACE\nDEBUG\nINFO\nWARN\nERROR\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestConsoleHandler_SplitStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Stdout: &stdout, Stderr: &stderr, UseStderr: true})
	defer h.Close()

	for _, l := range core.Levels {
		require.NoError(t, h.Handle(l, []byte(l.String())))
	}

	assert.Equal(t, "TRACE\nDEBUG\nINFO\n", stdout.String())
	assert.Equal(t, "WARN\nERROR\n", stderr.String())
}

func TestConsoleHandler_Route(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{UseStderr: true})

	w, name := h.Route(core.InfoLevel)
	assert.Equal(t, os.Stdout, w)
	assert.Equal(t, "stdout", name)

	w, name = h.Route(core.ErrorLevel)
	assert.Equal(t, os.Stderr, w)
	assert.Equal(t, "stderr", name)
}

func TestConsoleHandler_EmptyLine(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Stdout: &buf})

	require.NoError(t, h.Handle(core.InfoLevel, nil))
	assert.Equal(t, "\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestConsoleHandler_WriteError(t *testing.T) {
	var stdout bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Stdout: &stdout, Stderr: failingWriter{}, UseStderr: true})

	err := h.Handle(core.ErrorLevel, []byte("lost"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stderr")
	assert.Contains(t, err.Error(), "broken pipe")

	// the other stream keeps working
	require.NoError(t, h.Handle(core.InfoLevel, []byte("kept")))
	assert.Equal(t, "kept\n", stdout.String())

	snap := h.Stats()
	assert.Equal(t, uint64(1), snap.Failed[core.ErrorLevel])
	assert.Equal(t, uint64(1), snap.Processed[core.InfoLevel])
}

func TestConsoleHandler_Close(t *testing.T) {
	var out bytes.Buffer
	bw := bufio.NewWriter(&out)
	h := NewConsoleHandler(ConsoleConfig{Stdout: bw, Stderr: bw})

	require.NoError(t, h.Handle(core.InfoLevel, []byte("buffered")))
	assert.Empty(t, out.String())

	require.NoError(t, h.Close())
	assert.Equal(t, "buffered\n", out.String())

	// idempotent, and closed for writes
	require.NoError(t, h.Close())
	assert.True(t, errors.Is(h.Handle(core.InfoLevel, []byte("late")), handler.ErrClosed))
}

type failingFlusher struct{ io.Writer }

func (failingFlusher) Flush() error { return errors.New("flush failed") }

func TestConsoleHandler_CloseAggregatesErrors(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{
		Stdout: failingFlusher{io.Discard},
		Stderr: failingFlusher{&bytes.Buffer{}},
	})

	err := h.Close()
	require.Error(t, err)
	assert.Equal(t, 2, strings.Count(err.Error(), "flush failed"))
}

func TestConsoleHandler_ConcurrentLinesIntact(t *testing.T) {
	var out bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Stdout: &out, Stderr: &out, UseStderr: true})

	const goroutines = 8
	const msgs = 200
	line := strings.Repeat("x", 100)

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(level core.Level) {
			defer wg.Done()
			for i := 0; i < msgs; i++ {
				_ = h.Handle(level, []byte(line))
			}
		}(core.Levels[g%len(core.Levels)])
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, goroutines*msgs)
	for _, l := range lines {
		assert.Equal(t, line, l)
	}

	var sh handler.StatsProvider = h
	assert.Equal(t, uint64(goroutines*msgs), sh.Stats().ProcessedTotal)
}

func TestSameWriter(t *testing.T) {
	var a, b bytes.Buffer
	assert.True(t, sameWriter(&a, &a))
	assert.False(t, sameWriter(&a, &b))
	assert.True(t, sameWriter(os.Stdout, os.Stdout))
}
