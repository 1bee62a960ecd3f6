//go:build !unix && !windows

package platform

import (
	"os"

	"github.com/desertwitch/fsmeta/internal/schema"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
}

// Native returns the [Gate] of the build platform.
func Native() Gate {
	return Generic()
}

// NewNativeStatter returns the [Statter] of the build platform.
//
//nolint:ireturn
func NewNativeStatter() Statter {
	return NewGenericStatter(&schema.OS{})
}

// GenericStatter is a [Statter] built only upon Go's own file information.
type GenericStatter struct {
	osHandler osProvider
}

// NewGenericStatter returns a pointer to a new [GenericStatter].
func NewGenericStatter(osHandler osProvider) *GenericStatter {
	return &GenericStatter{
		osHandler: osHandler,
	}
}

// Stat returns the [schema.RawStat] of a path, following symbolic links.
func (s *GenericStatter) Stat(path string) (*schema.RawStat, error) {
	fi, err := s.osHandler.Stat(path)
	if err != nil {
		return nil, schema.Classify("stat", path, err)
	}

	return rawFromFileInfo(fi), nil
}

// Lstat returns the [schema.RawStat] of a path, not following symbolic links.
func (s *GenericStatter) Lstat(path string) (*schema.RawStat, error) {
	fi, err := s.osHandler.Lstat(path)
	if err != nil {
		return nil, schema.Classify("lstat", path, err)
	}

	return rawFromFileInfo(fi), nil
}
