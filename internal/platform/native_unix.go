//go:build unix

package platform

import (
	"time"

	"github.com/desertwitch/fsmeta/internal/schema"
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Stat(path string, stat *unix.Stat_t) error
	Lstat(path string, stat *unix.Stat_t) error
}

// Native returns the [Gate] of the build platform.
func Native() Gate {
	return POSIX()
}

// NewNativeStatter returns the [Statter] of the build platform.
//
//nolint:ireturn
func NewNativeStatter() Statter {
	return NewUnixStatter(&schema.Unix{})
}

// UnixStatter is a [Statter] reading the native stat structures.
type UnixStatter struct {
	unixHandler unixProvider
}

// NewUnixStatter returns a pointer to a new [UnixStatter].
func NewUnixStatter(unixHandler unixProvider) *UnixStatter {
	return &UnixStatter{
		unixHandler: unixHandler,
	}
}

// Stat returns the [schema.RawStat] of a path, following symbolic links.
func (s *UnixStatter) Stat(path string) (*schema.RawStat, error) {
	var stat unix.Stat_t

	if err := s.unixHandler.Stat(path, &stat); err != nil {
		return nil, schema.Classify("stat", path, err)
	}

	return rawFromUnix(&stat), nil
}

// Lstat returns the [schema.RawStat] of a path, not following symbolic links.
func (s *UnixStatter) Lstat(path string) (*schema.RawStat, error) {
	var stat unix.Stat_t

	if err := s.unixHandler.Lstat(path, &stat); err != nil {
		return nil, schema.Classify("lstat", path, err)
	}

	return rawFromUnix(&stat), nil
}

func rawFromUnix(stat *unix.Stat_t) *schema.RawStat {
	sec, nsec := stat.Mtim.Unix()

	return &schema.RawStat{
		Mode:       uint32(stat.Mode),
		UID:        int(stat.Uid),
		GID:        int(stat.Gid),
		Size:       stat.Size,
		ModifiedAt: time.Unix(sec, nsec),
	}
}
