// Package commands implements the CLI commands for thriftpath.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/thriftpath/internal/adapters/config"
	"go.trai.ch/thriftpath/internal/app"
	"go.trai.ch/thriftpath/internal/build"
	"go.trai.ch/thriftpath/internal/core/domain"
)

// CLI represents the command line interface for thriftpath.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	setVerbose func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.ResolveOptions) (*domain.Resolution, error)
	Clean(ctx context.Context, opts app.CleanOptions) ([]string, error)
}

// Option configures the CLI.
type Option func(*CLI)

// WithVerbosity registers the hook called with the value of --verbose before any command runs.
func WithVerbosity(fn func(bool)) Option {
	return func(c *CLI) {
		c.setVerbose = fn
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "thriftpath",
		Short:         "Resolve Thrift include directories from a classpath",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to the config file")
	rootCmd.PersistentFlags().String("state", "", "Path to the resolution state file")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug output")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if c.setVerbose != nil {
			c.setVerbose(verbose)
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// configFlags reads the persistent flags shared by all commands.
func configFlags(cmd *cobra.Command) (path string, explicit bool, state string) {
	path, _ = cmd.Flags().GetString("config")
	state, _ = cmd.Flags().GetString("state")
	return path, cmd.Flags().Changed("config"), state
}
