// Package main is the entry point for the thriftpath CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/thriftpath/cmd/thriftpath/commands"
	"go.trai.ch/thriftpath/internal/app"
	_ "go.trai.ch/thriftpath/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// verbositySetter is implemented by loggers that can toggle debug output.
type verbositySetter interface {
	SetVerbose(verbose bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, defaultProvider))
}

func defaultProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, func() {}, err
	}
	return c, func() { _ = c.Close() }, nil
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	var opts []commands.Option
	if v, ok := components.Logger.(verbositySetter); ok {
		opts = append(opts, commands.WithVerbosity(v.SetVerbose))
	}
	cli := commands.New(components.App, opts...)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
