package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
)

func (app *App) runCopy(ctx context.Context, args []string) error {
	if len(args) != 2 { //nolint:mnd
		return fmt.Errorf("%w: expected a source and a destination", ErrUsage)
	}

	report, err := app.ioHandler.Copy(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "Copied %s files (%s), %s directories and %s symbolic links.\n",
		humanize.Comma(int64(report.Files)),
		humanize.IBytes(report.Bytes),
		humanize.Comma(int64(report.Directories)),
		humanize.Comma(int64(report.Symlinks)),
	)

	return nil
}
