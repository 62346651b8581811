package progrock

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/thriftpath/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports each vertex through the logger once it completes.
// Output is buffered per vertex so lines from parallel extractions do not interleave.
type LogWriter struct {
	logger ports.Logger

	mu     sync.Mutex
	output map[string]*bytes.Buffer
	done   map[string]bool
}

// NewLogWriter creates a LogWriter reporting to logger at debug level.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger: logger,
		output: make(map[string]*bytes.Buffer),
		done:   make(map[string]bool),
	}
}

// WriteStatus buffers vertex output and flushes it when the vertex completes.
func (w *LogWriter) WriteStatus(status *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, l := range status.GetLogs() {
		buf, ok := w.output[l.GetVertex()]
		if !ok {
			buf = &bytes.Buffer{}
			w.output[l.GetVertex()] = buf
		}
		buf.Write(l.GetData())
	}

	for _, v := range status.GetVertexes() {
		if v.GetCompleted() == nil {
			// A vertex reusing a digest starts over.
			delete(w.done, v.GetId())
			continue
		}
		if w.done[v.GetId()] {
			continue
		}
		w.done[v.GetId()] = true
		w.flush(v)
	}
	return nil
}

func (w *LogWriter) flush(v *progrock.Vertex) {
	if buf, ok := w.output[v.GetId()]; ok {
		for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
			w.logger.Debug(fmt.Sprintf("%s: %s", v.GetName(), line))
		}
		delete(w.output, v.GetId())
	}

	var took string
	if v.GetStarted() != nil {
		took = v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime()).String()
	}
	switch {
	case v.GetCanceled():
		w.logger.Debug(v.GetName() + ": canceled")
	case v.Error != nil:
		w.logger.Debug(fmt.Sprintf("%s: failed after %s: %s", v.GetName(), took, v.GetError()))
	case v.GetCached():
		w.logger.Debug(v.GetName() + ": cached")
	default:
		w.logger.Debug(fmt.Sprintf("%s: done in %s", v.GetName(), took))
	}
}

// Close drops output of vertices that never completed.
func (w *LogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	clear(w.output)
	return nil
}
