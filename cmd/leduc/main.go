package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Verbose bool             `help:"Enable debug logging"`

	Solve    SolveCmd    `cmd:"" help:"Solve the game with discounted CFR"`
	Simulate SimulateCmd `cmd:"" help:"Play a solved strategy out to validate it"`
	Tree     TreeCmd     `cmd:"" help:"Inspect the game tree and its storage footprint"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("leduc"),
		kong.Description("Discounted CFR solver for Leduc hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := newLogger(cli.Verbose)
	runCtx := signalContext(logger)

	var err error
	switch ctx.Command() {
	case "solve":
		err = cli.Solve.Run(runCtx, logger)
	case "simulate":
		err = cli.Simulate.Run(runCtx, logger)
	case "tree":
		err = cli.Tree.Run()
	default:
		err = fmt.Errorf("unknown command: %s", ctx.Command())
	}
	ctx.FatalIfErrorf(err)
}

func newLogger(verbose bool) *log.Logger {
	opts := log.Options{ReportTimestamp: true}
	if verbose {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext(logger *log.Logger) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigc
		logger.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	return ctx
}
