// Package main is the entry point for the chronos timetable resolver.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/chronos/cmd/chronos/commands"
	"go.trai.ch/chronos/internal/app"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	_ "go.trai.ch/chronos/internal/wiring"
)

const (
	exitFailure  = 1
	exitNotFound = 2
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
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

	// 1. Components are built on first use so that flags reach the config node
	var components *app.Components
	cleanup := func() {}
	defer func() { cleanup() }()

	load := func(ctx context.Context) (commands.Application, ports.Logger, error) {
		c, done, err := provider(ctx)
		if err != nil {
			return nil, nil, err
		}
		components = c
		if done != nil {
			cleanup = done
		}
		return c.App, c.Logger, nil
	}

	// 2. Interface - CLI
	cli := commands.New(load)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	err := cli.Execute(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrGroupNotFound):
		return exitNotFound
	case errors.Is(err, domain.ErrResolutionFailed):
		return exitFailure
	case components == nil:
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	default:
		components.Logger.Error(err)
		return exitFailure
	}
}
