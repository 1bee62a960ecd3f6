//go:build unix

package schema

import "golang.org/x/sys/unix"

//nolint:gochecknoglobals
var errLoop error = unix.ELOOP
