// Package ownership implements the change of user and group ownership of
// filesystem entries, either of a single entry or of an entire directory
// subtree.
//
// A recursive change continues past failures of single entries, so that as
// much as possible of the subtree is changed, and reports all failed entries
// with their causes at the end. Platforms without an ownership concept always
// fail with [schema.ErrUnsupported], requested changes are never dropped.
package ownership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/fsmeta/internal/identity"
	"github.com/desertwitch/fsmeta/internal/platform"
	"github.com/desertwitch/fsmeta/internal/schema"
)

// FailureLogMessage is the message of the warning logged for every entry a
// recursive change failed on, with its "path" and "err" as attributes.
const FailureLogMessage = "Failed to change ownership (skipped)"

type gateProvider interface {
	Name() string
	SupportsOwnership() bool
}

type osProvider interface {
	Lstat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Chown(name string, uid, gid int) error
	Lchown(name string, uid, gid int) error
}

type identityProvider interface {
	LookupUserID(nameOrID string) (int, error)
	LookupGroupID(nameOrID string) (int, error)
}

// Handler is the principal implementation for changing ownership.
type Handler struct {
	gateHandler     gateProvider
	osHandler       osProvider
	identityHandler identityProvider
	progress        *tracker
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(gateHandler gateProvider, osHandler osProvider, identityHandler identityProvider) *Handler {
	return &Handler{
		gateHandler:     gateHandler,
		osHandler:       osHandler,
		identityHandler: identityHandler,
		progress:        &tracker{},
	}
}

// NewNativeHandler returns a pointer to a new [Handler] for the build platform,
// resolving names with the process-wide [identity.Default].
func NewNativeHandler() *Handler {
	return NewHandler(platform.Native(), &schema.OS{}, identity.Default())
}

// Report holds the outcome of every entry an ownership change was applied to,
// in the order they were processed.
type Report struct {
	Path     string
	Outcomes []schema.Outcome
}

// Succeeded returns the amount of entries that were changed.
func (r *Report) Succeeded() int {
	n := 0

	for _, o := range r.Outcomes {
		if !o.Failed() {
			n++
		}
	}

	return n
}

// Failures returns the outcomes of all entries that failed.
func (r *Report) Failures() []schema.Outcome {
	var failures []schema.Outcome

	for _, o := range r.Outcomes {
		if o.Failed() {
			failures = append(failures, o)
		}
	}

	return failures
}

func (r *Report) add(path string, err error) {
	r.Outcomes = append(r.Outcomes, schema.Outcome{Path: path, Err: err})
}

// Progress returns a snapshot of the progress of the most recent
// [Handler.Apply], safe to be called from any goroutine.
func (o *Handler) Progress() Progress {
	return o.progress.snapshot()
}

// Chown changes the ownership of path to user and group, each given as a name
// or a numeric identifier, with an empty string leaving it unchanged. It is a
// convenience wrapper around [Handler.Apply].
func (o *Handler) Chown(ctx context.Context, path string, user string, group string, recursive bool) error {
	_, err := o.Apply(ctx, schema.OwnershipRequest{
		Path:      path,
		User:      user,
		Group:     group,
		Recursive: recursive,
	})

	return err
}

// Apply applies an [schema.OwnershipRequest] and returns a [Report].
//
// A request without user and group is a successful no-op. On a platform
// without ownership it fails with [schema.ErrUnsupported]. A single entry is
// changed with one call, following a symbolic link. With a recursive request
// on a directory the directory and then all descendants are changed
// depth-first, never following symbolic links below it. If any entry failed,
// a [*schema.PartialFailureError] is returned together with the [Report].
//
// The context is checked between entries, a cancelled change returns the
// [Report] of what was processed until then.
func (o *Handler) Apply(ctx context.Context, req schema.OwnershipRequest) (*Report, error) {
	if req.Path == "" {
		return nil, schema.NewPathError("chown", req.Path, schema.ErrEmptyPath, nil)
	}

	report := &Report{Path: req.Path}

	if req.IsEmpty() {
		slog.Debug("No ownership change requested, skipping", "path", req.Path)

		return report, nil
	}

	if !o.gateHandler.SupportsOwnership() {
		return report, fmt.Errorf("(ownership-apply) %w",
			schema.NewPathError("chown", req.Path, schema.ErrUnsupported, nil))
	}

	uid, err := o.identityHandler.LookupUserID(req.User)
	if err != nil {
		return report, fmt.Errorf("(ownership-apply) %w", err)
	}

	gid, err := o.identityHandler.LookupGroupID(req.Group)
	if err != nil {
		return report, fmt.Errorf("(ownership-apply) %w", err)
	}

	if !req.Recursive {
		o.progress.start(1)
		defer o.progress.finish()

		err := o.change(req.Path, uid, gid, true)
		report.add(req.Path, err)
		o.progress.visit(err != nil)

		if err != nil {
			return report, fmt.Errorf("(ownership-apply) %w", err)
		}

		return report, nil
	}

	if err := o.walk(ctx, req.Path, uid, gid, report); err != nil {
		return report, fmt.Errorf("(ownership-apply) %w", err)
	}

	return report, nil
}

type workItem struct {
	path  string
	isDir bool
	root  bool
}

func (o *Handler) walk(ctx context.Context, root string, uid int, gid int, report *Report) error {
	fi, err := o.osHandler.Lstat(root)
	if err != nil {
		return schema.Classify("lstat", root, err)
	}

	o.progress.start(1)
	defer o.progress.finish()

	stack := []workItem{{path: root, isDir: fi.IsDir(), root: true}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return errors.Join(fmt.Errorf("%s: %w", root, err), partialFailure(root, report))
		}

		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		err := o.change(item.path, uid, gid, item.root)

		if item.isDir {
			children, readErr := o.children(item.path)
			if readErr != nil {
				err = errors.Join(err, readErr)
			}

			o.progress.discover(len(children))

			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, children[i])
			}
		}

		report.add(item.path, err)
		o.progress.visit(err != nil)

		if err != nil {
			slog.Warn(FailureLogMessage,
				"path", item.path,
				"err", err,
			)
		}
	}

	return partialFailure(root, report)
}

// partialFailure returns a [schema.PartialFailureError] if any entry of the
// report failed, otherwise nil.
func partialFailure(root string, report *Report) error {
	failures := report.Failures()
	if len(failures) == 0 {
		return nil
	}

	return &schema.PartialFailureError{
		Path:      root,
		Succeeded: len(report.Outcomes) - len(failures),
		Failures:  failures,
	}
}

func (o *Handler) children(dir string) ([]workItem, error) {
	entries, err := o.osHandler.ReadDir(dir)
	if err != nil {
		return nil, schema.Classify("readdir", dir, err)
	}

	items := make([]workItem, 0, len(entries))

	for _, entry := range entries {
		items = append(items, workItem{
			path:  filepath.Join(dir, entry.Name()),
			isDir: entry.IsDir(),
		})
	}

	return items, nil
}

func (o *Handler) change(path string, uid int, gid int, follow bool) error {
	if follow {
		return schema.Classify("chown", path, o.osHandler.Chown(path, uid, gid))
	}

	return schema.Classify("lchown", path, o.osHandler.Lchown(path, uid, gid))
}
