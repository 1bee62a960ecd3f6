package main

import "errors"

var (
	// ErrUsage is an error that occurs when a command is used incorrectly.
	ErrUsage = errors.New("invalid usage")

	// ErrCommandFailed is an error that occurs when a command failed for at
	// least one of its arguments, after the failures were already reported.
	ErrCommandFailed = errors.New("command failed")
)
