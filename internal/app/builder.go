package app

import (
	"go.trai.ch/thriftpath/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, tracer ports.Tracer) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		Tracer: tracer,
	}
}

// Close releases components that hold open resources.
func (c *Components) Close() error {
	if closer, ok := c.Tracer.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
