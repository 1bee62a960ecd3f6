// Package metadata implements the retrieval of platform-normalized metadata
// records for filesystem entries, either following symbolic links ([Stat]) or
// not ([LStat]).
//
// Every query reads from the operating system anew, nothing is cached.
package metadata

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/fsmeta/internal/platform"
	"github.com/desertwitch/fsmeta/internal/schema"
)

type gateProvider interface {
	Name() string
	SupportsOwnership() bool
	SupportsSymlinkDistinctMetadata() bool
	Mode(raw *schema.RawStat) uint32
}

type statProvider interface {
	Stat(path string) (*schema.RawStat, error)
	Lstat(path string) (*schema.RawStat, error)
}

type linkProvider interface {
	RealPath(path string, followToFinal bool) (*schema.ResolvedEntry, error)
}

type readlinkProvider interface {
	Readlink(name string) (string, error)
}

// Handler is the principal implementation for reading metadata.
type Handler struct {
	gateHandler     gateProvider
	statHandler     statProvider
	linkHandler     linkProvider
	readlinkHandler readlinkProvider
	strict          bool
}

// NewHandler returns a pointer to a new [Handler]. With strict, [Handler.LStat]
// fails with [schema.ErrUnsupported] on platforms without distinct link
// metadata, instead of degrading to [Handler.Stat].
func NewHandler(gateHandler gateProvider, statHandler statProvider, linkHandler linkProvider, readlinkHandler readlinkProvider, strict bool) *Handler {
	return &Handler{
		gateHandler:     gateHandler,
		statHandler:     statHandler,
		linkHandler:     linkHandler,
		readlinkHandler: readlinkHandler,
		strict:          strict,
	}
}

// NewNativeHandler returns a pointer to a new [Handler] for the build platform,
// resolving links with the given linkHandler.
func NewNativeHandler(linkHandler linkProvider, strict bool) *Handler {
	return NewHandler(
		platform.Native(),
		platform.NewNativeStatter(),
		linkHandler,
		&schema.OS{},
		strict,
	)
}

// Stat returns the [schema.FileStat] of the final target of path, following
// any symbolic links. The returned Path is the path as it was given.
//
// It returns [schema.ErrNotFound] if nothing exists at path or at its final
// target (a dangling link), and [schema.ErrCyclicLink] on a loop.
func (m *Handler) Stat(path string) (schema.FileStat, error) {
	if path == "" {
		return schema.FileStat{}, schema.NewPathError("stat", path, schema.ErrEmptyPath, nil)
	}

	resolved, err := m.linkHandler.RealPath(path, true)
	if err != nil {
		return schema.FileStat{}, fmt.Errorf("(metadata-stat) %w", err)
	}

	if resolved == nil {
		return schema.FileStat{}, fmt.Errorf("(metadata-stat) %w",
			schema.NewPathError("stat", path, schema.ErrNotFound, nil))
	}

	raw, err := m.statHandler.Stat(resolved.Path)
	if err != nil {
		return schema.FileStat{}, fmt.Errorf("(metadata-stat) %w", err)
	}

	return m.normalize(path, raw), nil
}

// LStat returns the [schema.FileStat] of path itself, not following a
// symbolic link, and behaves like [Handler.Stat] otherwise. The unresolved
// link content is set as SymlinkTarget.
//
// On platforms without distinct link metadata it degrades to [Handler.Stat],
// or fails with [schema.ErrUnsupported] if the [Handler] is strict.
func (m *Handler) LStat(path string) (schema.FileStat, error) {
	if path == "" {
		return schema.FileStat{}, schema.NewPathError("lstat", path, schema.ErrEmptyPath, nil)
	}

	if !m.gateHandler.SupportsSymlinkDistinctMetadata() {
		if m.strict {
			return schema.FileStat{}, fmt.Errorf("(metadata-lstat) %w",
				schema.NewPathError("lstat", path, schema.ErrUnsupported, nil))
		}

		slog.Debug("Link metadata not available, degrading to stat",
			"path", path,
			"platform", m.gateHandler.Name(),
		)

		return m.Stat(path)
	}

	raw, err := m.statHandler.Lstat(path)
	if err != nil {
		return schema.FileStat{}, fmt.Errorf("(metadata-lstat) %w", err)
	}

	stat := m.normalize(path, raw)

	if stat.IsSymlink {
		target, err := m.readlinkHandler.Readlink(path)
		if err != nil {
			return schema.FileStat{}, fmt.Errorf("(metadata-lstat) %w", schema.Classify("readlink", path, err))
		}
		stat.SymlinkTarget = target
	}

	return stat, nil
}

func (m *Handler) normalize(path string, raw *schema.RawStat) schema.FileStat {
	stat := schema.FileStat{
		Path:       path,
		Mode:       m.gateHandler.Mode(raw),
		UserID:     schema.NoID,
		GroupID:    schema.NoID,
		SizeBytes:  raw.Size,
		ModifiedAt: raw.ModifiedAt,
	}

	if m.gateHandler.SupportsOwnership() {
		stat.UserID = raw.UID
		stat.GroupID = raw.GID
	}

	switch stat.Mode & schema.ModeTypeMask {
	case schema.ModeRegular:
		stat.IsFile = true

	case schema.ModeDir:
		stat.IsDirectory = true

	case schema.ModeSymlink:
		stat.IsSymlink = true
	}

	return stat
}
