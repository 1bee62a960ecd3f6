// Command fsmeta queries the platform-normalized metadata of filesystem
// entries, resolves symbolic links, and changes ownership.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/desertwitch/fsmeta/internal/configuration"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	configFile = flag.String("config", "", "read the configuration from this KEY=VALUE file")
	logLevel   = flag.String("log-level", "", "minimum log level (debug, info, warn, error)")
)

func usage() {
	out := flag.CommandLine.Output()

	fmt.Fprintf(out, "fsmeta %s\n\n", Version)
	fmt.Fprintf(out, "Usage: %s [flags] <command> [arguments]\n\n", os.Args[0])
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  stat [-hash] PATH...             metadata, following symbolic links")
	fmt.Fprintln(out, "  lstat PATH...                    metadata, not following symbolic links")
	fmt.Fprintln(out, "  realpath [-follow] PATH          target of a symbolic link")
	fmt.Fprintln(out, "  owner PATH                       user and group names of the owner")
	fmt.Fprintln(out, "  chown [-R] [-ui] USER[:GROUP] PATH")
	fmt.Fprintln(out, "                                   change ownership (name or number)")
	fmt.Fprintln(out, "  copy SRC DST                     copy with verification")
	fmt.Fprintln(out, "  version                          print the version")
	fmt.Fprintln(out, "\nFlags:")
	flag.PrintDefaults()
}

func setupLogging(slogManager *SlogManager, level *slog.LevelVar) {
	slogManager.AddHandler(logToTerminal, newTintHandler(os.Stderr, level))
	slog.SetDefault(slog.New(slogManager))
}

func loadConfiguration(level *slog.LevelVar) (*configuration.AppConfiguration, error) {
	config := configuration.NewAppConfiguration()

	if *configFile != "" {
		var err error

		config, err = configuration.NewHandler(&configuration.GodotenvProvider{}).Load(*configFile)
		if err != nil {
			return nil, fmt.Errorf("(main-config) %w", err)
		}
	}

	if *logLevel != "" {
		if err := config.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
			return nil, fmt.Errorf("(main-config) %w: -log-level=%q", configuration.ErrInvalidValue, *logLevel)
		}
	}

	level.Set(config.LogLevel)

	return config, nil
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Usage = usage
	flag.Parse()

	level := &slog.LevelVar{}
	slogManager := NewSlogManager()

	setupLogging(slogManager, level)
	setupSignalHandlers(cancel)

	config, err := loadConfiguration(level)
	if err != nil {
		slog.Error("Failed to load the configuration.",
			"err", err,
		)
		ExitCode = 2

		return
	}

	app := NewApp(config, slogManager, level, os.Stdout)

	if err := app.Run(ctx, cancel, flag.Args()); err != nil {
		if errors.Is(err, ErrUsage) {
			flag.Usage()
			ExitCode = 2

			return
		}

		if !errors.Is(err, ErrCommandFailed) {
			slog.Error("Command failed.",
				"err", err,
			)
		}
		ExitCode = 1
	}
}
