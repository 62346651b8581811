package progrock

import (
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/thriftpath/internal/core/ports"
)

var _ ports.Span = (*Span)(nil)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write records p as the vertex's output.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError remembers err; End reports it.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Cached marks the vertex as a cache hit.
func (s *Span) Cached() {
	s.vertex.Cached()
}

// End marks the vertex as finished, failed if an error was recorded.
func (s *Span) End() {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	s.vertex.Done(err)
}
