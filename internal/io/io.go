// Package io implements a copy helper for files, directories and symbolic
// links, which decides how to copy an entry from its [schema.FileStat].
//
// Permission bits and modification times are carried over, ownership is not.
package io

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/desertwitch/fsmeta/internal/schema"
)

type statProvider interface {
	LStat(path string) (schema.FileStat, error)
}

type osProvider interface {
	Chmod(name string, mode os.FileMode) error
	Chtimes(name string, atime time.Time, mtime time.Time) error
	Lstat(name string) (os.FileInfo, error)
	Mkdir(name string, perm os.FileMode) error
	Open(name string) (*os.File, error)
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Symlink(oldname, newname string) error
}

// Handler is the principal implementation for copying filesystem entries.
type Handler struct {
	statHandler statProvider
	osHandler   osProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(statHandler statProvider, osHandler osProvider) *Handler {
	return &Handler{
		statHandler: statHandler,
		osHandler:   osHandler,
	}
}

// NewNativeHandler returns a pointer to a new [Handler] operating on the
// filesystem of the build platform.
func NewNativeHandler(statHandler statProvider) *Handler {
	return NewHandler(statHandler, &schema.OS{})
}

// Report holds the amount of entries and bytes that were copied.
type Report struct {
	Files       int
	Directories int
	Symlinks    int
	Bytes       uint64
}

// Copy copies the entry at src to dst, which must not exist. A directory is
// copied with all of its contents, a symbolic link is recreated with the same
// content and not followed. The first failure stops the copy.
func (i *Handler) Copy(ctx context.Context, src string, dst string) (*Report, error) {
	report := &Report{}

	if src == "" || dst == "" {
		return report, schema.NewPathError("copy", src, schema.ErrEmptyPath, nil)
	}

	if err := i.copyEntry(ctx, src, dst, report); err != nil {
		return report, fmt.Errorf("(io-copy) %w", err)
	}

	return report, nil
}

func (i *Handler) copyEntry(ctx context.Context, src string, dst string, report *Report) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrContextError, err)
	}

	if err := i.ensureNotExists(dst); err != nil {
		return err
	}

	stat, err := i.statHandler.LStat(src)
	if err != nil {
		return err
	}

	switch {
	case stat.IsSymlink:
		if err := i.osHandler.Symlink(stat.SymlinkTarget, dst); err != nil {
			return fmt.Errorf("failed to create symlink: %w", schema.Classify("symlink", dst, err))
		}
		report.Symlinks++

	case stat.IsDirectory:
		if err := i.copyDirectory(ctx, src, dst, stat, report); err != nil {
			return err
		}
		report.Directories++

	case stat.IsFile:
		n, err := i.copyFile(ctx, src, dst, stat)
		if err != nil {
			return err
		}
		report.Files++
		report.Bytes += n

	default:
		return fmt.Errorf("%w: %s", ErrNothingToProcess, src)
	}

	slog.Debug("Copied:", "path", dst, "src", src)

	return nil
}

func (i *Handler) copyDirectory(ctx context.Context, src string, dst string, stat schema.FileStat, report *Report) error {
	if err := i.osHandler.Mkdir(dst, 0o700); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create directory: %w", schema.Classify("mkdir", dst, err))
	}

	entries, err := i.osHandler.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", schema.Classify("readdir", src, err))
	}

	for _, entry := range entries {
		if err := i.copyEntry(ctx, filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), report); err != nil {
			return err
		}
	}

	return i.ensureMetadata(dst, stat)
}

func (i *Handler) ensureNotExists(path string) error {
	if _, err := i.osHandler.Lstat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check destination existence: %w", schema.Classify("lstat", path, err))
	}

	return nil
}

// ensureMetadata must be called after the contents were written, as these
// would otherwise change the modification time again.
func (i *Handler) ensureMetadata(path string, stat schema.FileStat) error {
	if err := i.osHandler.Chmod(path, permissions(stat)); err != nil {
		return fmt.Errorf("failed to set permissions: %w", schema.Classify("chmod", path, err))
	}

	if err := i.osHandler.Chtimes(path, stat.ModifiedAt, stat.ModifiedAt); err != nil {
		return fmt.Errorf("failed to set timestamps: %w", schema.Classify("chtimes", path, err))
	}

	return nil
}

func permissions(stat schema.FileStat) os.FileMode {
	return os.FileMode(stat.Perm() & 0o777) //nolint:mnd
}
