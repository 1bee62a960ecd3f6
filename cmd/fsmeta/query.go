package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/desertwitch/fsmeta/internal/schema"
	"github.com/desertwitch/fsmeta/internal/util"
)

type statResult struct {
	stat schema.FileStat
	hash string
	err  error
}

func (app *App) runStat(ctx context.Context, args []string, lstat bool) error {
	name := "stat"
	if lstat {
		name = "lstat"
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	withHash := flags.Bool("hash", false, "also print the BLAKE3 digest of files")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if flags.NArg() == 0 {
		return fmt.Errorf("%w: no paths given", ErrUsage)
	}

	results, err := util.ConcurrentMapSlice(ctx, flags.Args(), func(path string) statResult {
		var res statResult

		if lstat {
			res.stat, res.err = app.metaHandler.LStat(path)
		} else {
			res.stat, res.err = app.metaHandler.Stat(path)
		}

		if res.err == nil && *withHash && res.stat.IsFile {
			res.hash, res.err = app.ioHandler.Checksum(ctx, path)
		}

		return res
	})
	if err != nil {
		return err
	}

	failed := false

	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(app.stdout)
		}

		if res.err != nil {
			failed = true
			fmt.Fprintln(app.stdout, formatFailure(flags.Arg(i), res.err))

			continue
		}

		fmt.Fprint(app.stdout, app.formatStat(res.stat, res.hash))
	}

	if failed {
		return ErrCommandFailed
	}

	return nil
}

func (app *App) runRealPath(args []string) error {
	flags := flag.NewFlagSet("realpath", flag.ContinueOnError)
	follow := flags.Bool("follow", false, "follow a chain of links to the final target")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("%w: expected exactly one path", ErrUsage)
	}

	resolved, err := app.linkHandler.RealPath(flags.Arg(0), *follow)
	if err != nil {
		return err
	}

	if resolved == nil {
		fmt.Fprintln(app.stdout, failStyle.Render("dangling"))

		return ErrCommandFailed
	}

	fmt.Fprintln(app.stdout, resolved.Path)

	return nil
}

func (app *App) runOwner(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one path", ErrUsage)
	}

	stat, err := app.metaHandler.Stat(args[0])
	if err != nil {
		return err
	}

	userName, err := stat.UserName(app.identityHandler)
	if err != nil && !errors.Is(err, schema.ErrNotFound) {
		return err
	} else if err != nil {
		userName = fmt.Sprint(stat.UserID)
	}

	groupName, err := stat.GroupName(app.identityHandler)
	if err != nil && !errors.Is(err, schema.ErrNotFound) {
		return err
	} else if err != nil {
		groupName = fmt.Sprint(stat.GroupID)
	}

	fmt.Fprintf(app.stdout, "%s:%s\n", userName, groupName)

	return nil
}
