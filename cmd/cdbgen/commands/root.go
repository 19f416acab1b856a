// Package commands implements the management CLI of cdbgen.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cdbgen/internal/app"
	"go.trai.ch/cdbgen/internal/build"
	"go.trai.ch/cdbgen/internal/core/domain"
)

// CLI represents the command line interface for cdbgen.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Record(ctx context.Context, opts app.RecordOptions) (domain.SyncResult, error)
	Show(ctx context.Context, w io.Writer, opts app.ShowOptions) error
	Link(ctx context.Context, opts app.LinkOptions) ([]string, error)
	Config(w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "cdbgen",
		Short: "Record compiler invocations into compile_commands.json",
		Long: "cdbgen records every compiler call made through a cdbgen-<compiler> shim\n" +
			"into a shared compilation database, then runs the real compiler.",
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

	rootCmd.AddCommand(c.newRecordCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newLinkCmd())
	rootCmd.AddCommand(c.newConfigCmd())
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
