package ports

import (
	"context"
	"io"
)

// Tracer is the entry point for creating spans.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work. Writes are recorded as the span's output.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError marks the span as failed with err.
	RecordError(err error)
	// Cached marks the span as satisfied by a previous run.
	Cached()
}
