package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrNotFound is an error that occurs when a path or an identifier does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupported is an error that occurs when the platform lacks the
	// queried concept, such as ownership or distinct symbolic link metadata.
	ErrUnsupported = fmt.Errorf("concept not available on this platform: %w", errors.ErrUnsupported)

	// ErrAccessDenied is an error that occurs when the privileges are
	// insufficient for a native call.
	ErrAccessDenied = errors.New("access denied")

	// ErrCyclicLink is an error that occurs when the resolution of symbolic
	// links has detected a loop.
	ErrCyclicLink = errors.New("cyclic symbolic link")

	// ErrPartialFailure is an error that occurs when an operation over many
	// entries has failed for some of them.
	ErrPartialFailure = errors.New("operation failed for some entries")

	// ErrEmptyPath is an error that occurs when an empty path is given.
	ErrEmptyPath = errors.New("empty path")
)

// PathError records an error of the taxonomy, together with the operation and
// path that caused it. It unwraps to both the taxonomy Kind and the underlying
// Err (if any), so that [errors.Is] matches either.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

// NewPathError returns a pointer to a new [PathError].
func NewPathError(op string, path string, kind error, err error) *PathError {
	return &PathError{
		Op:   op,
		Path: path,
		Kind: kind,
		Err:  err,
	}
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}

	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// Classify maps a native error into the taxonomy, returning a [PathError]. A
// nil error stays nil, an error already carrying a taxonomy kind is returned
// unchanged. Errors with no matching kind are returned as they are.
func Classify(op string, path string, err error) error {
	if err == nil {
		return nil
	}

	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return err
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NewPathError(op, path, ErrNotFound, err)

	case errors.Is(err, fs.ErrPermission):
		return NewPathError(op, path, ErrAccessDenied, err)

	case errLoop != nil && errors.Is(err, errLoop):
		return NewPathError(op, path, ErrCyclicLink, err)

	case errors.Is(err, errors.ErrUnsupported):
		return NewPathError(op, path, ErrUnsupported, err)
	}

	return fmt.Errorf("%s %s: %w", op, path, err)
}

// PartialFailureError is returned by operations over a directory subtree that
// continued past per-entry failures. It lists every failed entry with its own
// cause and unwraps to [ErrPartialFailure] and each of these causes.
type PartialFailureError struct {
	Path      string
	Succeeded int
	Failures  []Outcome
}

func (e *PartialFailureError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%v below %s (%d succeeded, %d failed)",
		ErrPartialFailure, e.Path, e.Succeeded, len(e.Failures))

	for _, f := range e.Failures {
		fmt.Fprintf(&sb, "; %v", f.Err)
	}

	return sb.String()
}

func (e *PartialFailureError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures)+1)
	errs = append(errs, ErrPartialFailure)

	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}

	return errs
}

// FailedPaths returns the paths of all failed entries.
func (e *PartialFailureError) FailedPaths() []string {
	paths := make([]string, 0, len(e.Failures))

	for _, f := range e.Failures {
		paths = append(paths, f.Path)
	}

	return paths
}
