// Package links implements the resolution of symbolic links, either by a
// single hop or along a chain to its final target.
package links

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/desertwitch/fsmeta/internal/schema"
)

const (
	// DefaultMaxHops is the default amount of links followed in a chain before
	// it is considered cyclic, matching the Linux kernel's limit.
	DefaultMaxHops = 40
)

type osProvider interface {
	EvalSymlinks(path string) (string, error)
	Lstat(name string) (os.FileInfo, error)
	Readlink(name string) (string, error)
}

// Handler is the principal implementation for resolving symbolic links.
type Handler struct {
	osHandler osProvider
	maxHops   int
}

// NewHandler returns a pointer to a new [Handler]. A maxHops <= 0 falls back
// to [DefaultMaxHops].
func NewHandler(osHandler osProvider, maxHops int) *Handler {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}

	return &Handler{
		osHandler: osHandler,
		maxHops:   maxHops,
	}
}

// RealPath resolves a symbolic link. With followToFinal it follows a chain of
// links to the final non-link target, otherwise exactly one hop is resolved.
//
// A path that is not a link resolves to itself (with zero hops). Otherwise
// the returned Path has no links in its parent directories, and relative link
// contents are resolved against the real directory of the link. A dangling
// link, whose target does not exist or passes through a non-directory,
// returns a nil [schema.ResolvedEntry] and no error. A path that does not exist itself returns [schema.ErrNotFound],
// a loop in the chain returns [schema.ErrCyclicLink].
func (l *Handler) RealPath(path string, followToFinal bool) (*schema.ResolvedEntry, error) {
	if path == "" {
		return nil, schema.NewPathError("realpath", path, schema.ErrEmptyPath, nil)
	}

	fi, err := l.osHandler.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("(links-realpath) %w", schema.Classify("lstat", path, err))
	}

	if fi.Mode()&fs.ModeSymlink == 0 {
		return &schema.ResolvedEntry{Path: path}, nil
	}

	current, err := l.canonical(path)
	if err != nil {
		return nil, fmt.Errorf("(links-realpath) %w", schema.Classify("realpath", path, err))
	}

	visited := map[string]struct{}{
		current: {},
	}

	for hops := 1; ; hops++ {
		target, err := l.osHandler.Readlink(current)
		if err != nil {
			return nil, fmt.Errorf("(links-realpath) %w", schema.Classify("readlink", current, err))
		}

		next := joinTarget(current, target)

		fi, err := l.osHandler.Lstat(next)
		if err != nil {
			if isDangling(err) {
				slog.Debug("Link is dangling",
					"path", path,
					"link", current,
					"target", next,
				)

				return nil, nil //nolint:nilnil
			}

			return nil, fmt.Errorf("(links-realpath) %w", schema.Classify("lstat", next, err))
		}

		resolved, err := l.canonical(next)
		if err != nil {
			return nil, fmt.Errorf("(links-realpath) %w", schema.Classify("realpath", next, err))
		}

		isSymlink := fi.Mode()&fs.ModeSymlink != 0

		if !followToFinal || !isSymlink {
			return &schema.ResolvedEntry{
				Path:      resolved,
				Target:    target,
				IsSymlink: isSymlink,
				Hops:      hops,
			}, nil
		}

		if _, seen := visited[resolved]; seen || hops >= l.maxHops {
			return nil, schema.NewPathError("realpath", path, schema.ErrCyclicLink,
				fmt.Errorf("loop at %s after %d hops", resolved, hops))
		}
		visited[resolved] = struct{}{}

		current = resolved
	}
}

// canonical returns path with all links in its parent directories resolved,
// the last element itself is kept as is. The entry at path must exist.
func (l *Handler) canonical(path string) (string, error) {
	dir, base := split(path)

	switch base {
	case "", ".", "..":
		// The last element is a directory the kernel would also traverse.
		return l.osHandler.EvalSymlinks(path)
	}

	realDir, err := l.osHandler.EvalSymlinks(dir)
	if err != nil {
		return "", err
	}

	return filepath.Join(realDir, base), nil
}

// split separates the last element of path from its parent directory without
// cleaning, so a ".." is left for the kernel to resolve. A trailing separator
// yields an empty last element.
func split(path string) (string, string) {
	vol := len(filepath.VolumeName(path))

	i := len(path) - 1
	for i >= vol && !os.IsPathSeparator(path[i]) {
		i--
	}

	switch {
	case i < vol:
		return path[:vol] + ".", path[vol:]
	case i == len(path)-1:
		return path, ""
	default:
		return path[:i+1], path[i+1:]
	}
}

// joinTarget makes a link's content usable as a path, relative contents being
// relative to the directory containing the link. The link's directory must be
// free of links, the content is appended verbatim.
func joinTarget(link string, target string) string {
	if filepath.IsAbs(target) {
		return target
	}

	dir := filepath.Dir(link)
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + target
	}

	return dir + string(filepath.Separator) + target
}

// isDangling reports if a failed lookup of a link's target means there is no
// entry at the target, either a missing element or a non-directory element in
// the middle of its path.
func isDangling(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
