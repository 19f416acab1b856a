// Package main is the entry point for cdbgen.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdbgen/cmd/cdbgen/commands"
	"go.trai.ch/cdbgen/internal/app"
	_ "go.trai.ch/cdbgen/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

// run dispatches on argv[0]: a prefixed name turns the process into a
// compiler shim, anything else gets the management CLI.
func run(
	ctx context.Context,
	argv []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
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

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Shim mode
	if len(argv) > 0 && components.App.IsShim(argv[0]) {
		code, err := components.App.Intercept(ctx, argv)
		if err != nil {
			components.Logger.Error(err)
		}
		return code
	}

	// 3. Interface - CLI
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
