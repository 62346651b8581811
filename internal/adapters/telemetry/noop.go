// Package telemetry provides tracer implementations for extraction progress.
package telemetry

import (
	"context"

	"go.trai.ch/thriftpath/internal/core/ports"
)

var (
	_ ports.Tracer = (*NoOpTracer)(nil)
	_ ports.Span   = (*NoOpSpan)(nil)
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// Cached does nothing.
func (s *NoOpSpan) Cached() {}

// Write does nothing and returns the length of p.
func (s *NoOpSpan) Write(p []byte) (n int, err error) {
	return len(p), nil
}
