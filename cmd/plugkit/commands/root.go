// Package commands implements the CLI commands for plugkit.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/plugkit/internal/app"
	"go.trai.ch/plugkit/internal/build"
	"go.trai.ch/plugkit/internal/core/domain"
)

// CLI represents the command line interface for plugkit.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	config  string
}

// Application represents the application logic interface.
type Application interface {
	Emit(ctx context.Context, configPath string) ([]domain.EmittedCommands, error)
	Exec(ctx context.Context, configPath string, opts app.ExecOptions) ([]app.CommandResult, error)
	Watch(ctx context.Context, configPath string, opts app.ExecOptions) error
	Which(ctx context.Context, command string) (string, error)
	Toolchain(ctx context.Context, configPath, command string) (string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "plugkit",
		Short:         "Run build tool plugins outside the host build system",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.config, "config", "c", domain.DefaultConfigFile, "Path to the project file")

	rootCmd.AddCommand(c.newEmitCmd())
	rootCmd.AddCommand(c.newExecCmd())
	rootCmd.AddCommand(c.newWhichCmd())
	rootCmd.AddCommand(c.newToolchainCmd())
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
