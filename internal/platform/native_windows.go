//go:build windows

package platform

import (
	"os"
	"syscall"

	"github.com/desertwitch/fsmeta/internal/schema"
	"golang.org/x/sys/windows"
)

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
}

// Native returns the [Gate] of the build platform.
func Native() Gate {
	return Windows()
}

// NewNativeStatter returns the [Statter] of the build platform.
//
//nolint:ireturn
func NewNativeStatter() Statter {
	return NewWindowsStatter(&schema.OS{})
}

// WindowsStatter is a [Statter] reading the file attribute bits. It never
// reports numeric ownership.
type WindowsStatter struct {
	osHandler osProvider
}

// NewWindowsStatter returns a pointer to a new [WindowsStatter].
func NewWindowsStatter(osHandler osProvider) *WindowsStatter {
	return &WindowsStatter{
		osHandler: osHandler,
	}
}

// Stat returns the [schema.RawStat] of a path, following symbolic links.
func (s *WindowsStatter) Stat(path string) (*schema.RawStat, error) {
	fi, err := s.osHandler.Stat(path)
	if err != nil {
		return nil, schema.Classify("stat", path, err)
	}

	return rawFromWindows(fi), nil
}

// Lstat returns the [schema.RawStat] of a path, not following symbolic links.
func (s *WindowsStatter) Lstat(path string) (*schema.RawStat, error) {
	fi, err := s.osHandler.Lstat(path)
	if err != nil {
		return nil, schema.Classify("lstat", path, err)
	}

	return rawFromWindows(fi), nil
}

func rawFromWindows(fi os.FileInfo) *schema.RawStat {
	raw := rawFromFileInfo(fi)

	if data, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok {
		raw.Attributes = schema.Attributes{
			ReadOnly:     data.FileAttributes&windows.FILE_ATTRIBUTE_READONLY != 0,
			Directory:    data.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0,
			ReparsePoint: data.FileAttributes&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0,
		}
	}

	return raw
}
