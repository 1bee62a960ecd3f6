package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/desertwitch/fsmeta/internal/configuration"
	"github.com/desertwitch/fsmeta/internal/identity"
	fsio "github.com/desertwitch/fsmeta/internal/io"
	"github.com/desertwitch/fsmeta/internal/links"
	"github.com/desertwitch/fsmeta/internal/metadata"
	"github.com/desertwitch/fsmeta/internal/ownership"
	"github.com/desertwitch/fsmeta/internal/platform"
	"github.com/desertwitch/fsmeta/internal/schema"
)

// App holds the handlers shared by all commands.
type App struct {
	config      *configuration.AppConfiguration
	slogManager *SlogManager
	level       slog.Leveler
	stdout      io.Writer

	linkHandler      *links.Handler
	metaHandler      *metadata.Handler
	identityHandler  *identity.Handler
	ownershipHandler *ownership.Handler
	ioHandler        *fsio.Handler
}

// NewApp returns a pointer to a new [App] for the build platform.
func NewApp(config *configuration.AppConfiguration, slogManager *SlogManager, level slog.Leveler, stdout io.Writer) *App {
	linkHandler := links.NewHandler(&schema.OS{}, config.MaxLinkHops)
	metaHandler := metadata.NewNativeHandler(linkHandler, config.StrictLStat)

	return &App{
		config:           config,
		slogManager:      slogManager,
		level:            level,
		stdout:           stdout,
		linkHandler:      linkHandler,
		metaHandler:      metaHandler,
		identityHandler:  identity.Default(),
		ownershipHandler: ownership.NewNativeHandler(),
		ioHandler:        fsio.NewNativeHandler(metaHandler),
	}
}

// Run runs the command named by the first argument. The cancel function is
// that of the context, for the user interface to stop the command.
func (app *App) Run(ctx context.Context, cancel context.CancelFunc, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	slog.Debug("Running command",
		"command", args[0],
		"platform", platform.Native().Name(),
	)

	var err error

	switch args[0] {
	case "stat":
		err = app.runStat(ctx, args[1:], false)
	case "lstat":
		err = app.runStat(ctx, args[1:], true)
	case "realpath":
		err = app.runRealPath(args[1:])
	case "owner":
		err = app.runOwner(args[1:])
	case "chown":
		err = app.runChown(ctx, cancel, args[1:])
	case "copy":
		err = app.runCopy(ctx, args[1:])
	case "version":
		fmt.Fprintf(app.stdout, "fsmeta %s (%s)\n", Version, platform.Native().Name())
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	if err != nil {
		return fmt.Errorf("(app-%s) %w", args[0], err)
	}

	return nil
}
