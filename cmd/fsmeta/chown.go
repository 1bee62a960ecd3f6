package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/desertwitch/fsmeta/internal/ownership"
	"github.com/desertwitch/fsmeta/internal/schema"
	"github.com/desertwitch/fsmeta/internal/ui"
	"github.com/dustin/go-humanize"
)

// parseOwnerSpec splits a USER[:GROUP] argument. Either side may be empty to
// leave it unchanged, as in ":GROUP".
func parseOwnerSpec(spec string) (string, string) {
	user, group, _ := strings.Cut(spec, ":")

	return user, group
}

func (app *App) runChown(ctx context.Context, cancel context.CancelFunc, args []string) error {
	flags := flag.NewFlagSet("chown", flag.ContinueOnError)
	recursive := flags.Bool("R", false, "change the directory and all of its descendants")
	withUI := flags.Bool("ui", app.config.UI, "show the progress of a recursive change in a user interface")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if flags.NArg() != 2 { //nolint:mnd
		return fmt.Errorf("%w: expected USER[:GROUP] and a path", ErrUsage)
	}

	user, group := parseOwnerSpec(flags.Arg(0))
	req := schema.OwnershipRequest{
		Path:      flags.Arg(1),
		User:      user,
		Group:     group,
		Recursive: *recursive,
	}

	var (
		report *ownership.Report
		err    error
	)

	if *withUI && req.Recursive {
		report, err = app.applyWithUI(ctx, cancel, req)
	} else {
		report, err = app.ownershipHandler.Apply(ctx, req)
	}

	if report != nil && len(report.Outcomes) > 0 {
		app.printChownReport(report)
	}

	var partial *schema.PartialFailureError
	if errors.As(err, &partial) {
		return ErrCommandFailed
	}

	return err
}

func (app *App) printChownReport(report *ownership.Report) {
	failures := report.Failures()

	for _, f := range failures {
		fmt.Fprintln(app.stdout, formatFailure(f.Path, f.Err))
	}

	summary := fmt.Sprintf("Changed ownership of %s entries below %s, %s failed.",
		humanize.Comma(int64(report.Succeeded())),
		report.Path,
		humanize.Comma(int64(len(failures))),
	)

	if len(failures) > 0 {
		fmt.Fprintln(app.stdout, failStyle.Render(summary))
	} else {
		fmt.Fprintln(app.stdout, summary)
	}
}

// applyWithUI applies the request while the user interface shows its
// progress, with the logs moved into the user interface for that duration.
// Should the user interface fail, the request continues on the terminal.
func (app *App) applyWithUI(ctx context.Context, cancel context.CancelFunc, req schema.OwnershipRequest) (*ownership.Report, error) {
	var wg sync.WaitGroup

	uiHandler := ui.NewHandler(ctx, cancel, "Ownership Change: "+req.Path, app.ownershipHandler)

	app.slogManager.AddHandler(logToUI, uiHandler.NewLogHandler(newTintHandler(uiHandler.LogWriter, app.level)))
	app.slogManager.RemoveHandler(logToTerminal)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer app.restoreTerminalLogging()

		if err := uiHandler.Launch(); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("UI failure: falling back to terminal.", "err", err)
		}
	}()

	for !uiHandler.Ready.Load() && !uiHandler.Failed.Load() {
		if ctx.Err() != nil {
			break
		}
		time.Sleep(10 * time.Millisecond) //nolint:mnd
	}

	report, err := app.ownershipHandler.Apply(ctx, req)

	uiHandler.Quit()
	wg.Wait()

	return report, err
}

func (app *App) restoreTerminalLogging() {
	app.slogManager.AddHandler(logToTerminal, newTintHandler(os.Stderr, app.level))
	app.slogManager.RemoveHandler(logToUI)
}
