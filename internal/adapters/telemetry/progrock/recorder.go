// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/thriftpath/internal/core/ports"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer by recording one Progrock vertex per span.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a new Recorder reporting completed vertices through logger.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewLogWriter(logger))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{rec: progrock.NewRecorder(w)}
}

// Start records a new vertex named after the unit of work.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.rec.Close()
}
