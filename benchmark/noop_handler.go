package benchmark

import (
	"github.com/philipp01105/disco/core"
	"github.com/philipp01105/disco/handler"
)

var sinkInt int

// noopHandler accepts rendered lines and throws them away, isolating
// the cost of formatting and colouring
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(_ core.Level, line []byte) error {
	sinkInt += len(line)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
