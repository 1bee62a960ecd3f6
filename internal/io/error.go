package io

import "errors"

var (
	// ErrHashMismatch is an error that occurs when there is a source/destination hash
	// mismatch, this usually means that there are underlying transfer/hardware issues.
	ErrHashMismatch = errors.New("hash mismatch")

	// ErrDestinationExists is an error that occurs when a destination of a copy
	// already exists, which is never overwritten.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrNothingToProcess is an error that occurs when an entry is neither a
	// file, a directory nor a symbolic link, so it cannot be copied.
	ErrNothingToProcess = errors.New("entry with nothing to process")

	// ErrContextError is an error that occurs when a copy was interrupted by
	// its context.
	ErrContextError = errors.New("context error")
)
