//go:build unix

package schema

import "golang.org/x/sys/unix"

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Stat wraps around [unix.Stat].
func (*Unix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}
