package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/tailored-agentic-units/statepattern/config"
	"github.com/tailored-agentic-units/statepattern/observability"
	"github.com/tailored-agentic-units/statepattern/state"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("statepattern", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		configFile = flags.String("config", "", "Path to a JSON or YAML context config")
		initial    = flags.String("initial", "", "Initial state variant (overrides config)")
		verbose    = flags.Bool("verbose", false, "Log every event to stderr at debug level")
		events     = flags.Bool("events", false, "Write events to stderr as protojson lines")
	)
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() > 0 {
		fmt.Fprintln(stderr, "Usage: statepattern [-config <file>] [-initial <variant>] [-verbose] [-events]")
		flags.PrintDefaults()
		return 1
	}

	cfg := config.DefaultContextConfig()
	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return 1
		}
		cfg = *loaded
	}
	if *initial != "" {
		cfg.Initial = *initial
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	proto := observability.NewProtoObserver(stderr)
	observability.RegisterObserver("console", state.NewConsoleObserver(stdout))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))
	observability.RegisterObserver("proto", proto)

	if *verbose && !slices.Contains(cfg.Observers, "slog") {
		cfg.Observers = append(cfg.Observers, "slog")
	}
	if *events && !slices.Contains(cfg.Observers, "proto") {
		cfg.Observers = append(cfg.Observers, "proto")
	}

	ctx := context.Background()

	c, err := state.NewFromConfig(ctx, &cfg)
	if err != nil {
		logger.Error("failed to create context", "error", err)
		return 1
	}

	runErr := c.Run(ctx, cfg.Requests...)
	if err := c.Close(ctx); err != nil {
		logger.Error("failed to close context", "error", err)
		return 1
	}
	if runErr != nil {
		logger.Error("run failed", "context", c.Name(), "error", runErr)
		return 1
	}
	if err := proto.Err(); err != nil {
		logger.Error("event stream failed", "error", err)
		return 1
	}

	return 0
}
