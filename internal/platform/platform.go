// Package platform isolates all platform-conditional logic. It provides the
// capability gates that decide whether ownership and distinct symbolic link
// metadata exist at all, synthesizes modes where native mode bits are absent,
// and provides the native metadata calls for the build platform.
package platform

import (
	"github.com/desertwitch/fsmeta/internal/schema"
)

// Gate describes methods that a platform capability gate needs to have.
type Gate interface {
	Name() string
	SupportsOwnership() bool
	SupportsSymlinkDistinctMetadata() bool
	Mode(raw *schema.RawStat) uint32
}

// Statter describes methods that a native metadata implementation needs to
// have. Stat follows symbolic links, Lstat does not.
type Statter interface {
	Stat(path string) (*schema.RawStat, error)
	Lstat(path string) (*schema.RawStat, error)
}

// Capabilities is the principal implementation of a [Gate]. Its probes are
// pure and cheap, so it is passed and compared by value.
type Capabilities struct {
	name          string
	ownership     bool
	distinctLinks bool
	nativeMode    bool
}

// POSIX returns the [Capabilities] of a POSIX system: numeric ownership,
// distinct link metadata and native mode bits.
func POSIX() Capabilities {
	return Capabilities{
		name:          "posix",
		ownership:     true,
		distinctLinks: true,
		nativeMode:    true,
	}
}

// Windows returns the [Capabilities] of a Windows system. There is no numeric
// ownership and the mode is synthesized from the attribute bits.
func Windows() Capabilities {
	return Capabilities{
		name: "windows",
	}
}

// Generic returns the [Capabilities] of any other system, which are treated
// like Windows but with the attributes derived from Go's own file modes.
func Generic() Capabilities {
	return Capabilities{
		name: "generic",
	}
}

// Name returns a short identifying name of the platform.
func (c Capabilities) Name() string {
	return c.name
}

// SupportsOwnership reports if the platform has numeric user and group
// ownership of filesystem entries.
func (c Capabilities) SupportsOwnership() bool {
	return c.ownership
}

// SupportsSymlinkDistinctMetadata reports if the platform can return metadata
// of a symbolic link itself, as opposed to that of its target.
func (c Capabilities) SupportsSymlinkDistinctMetadata() bool {
	return c.distinctLinks
}

// Mode returns the POSIX-style mode for a [schema.RawStat], which is either
// the native mode or one synthesized with [SynthesizeMode].
func (c Capabilities) Mode(raw *schema.RawStat) uint32 {
	if c.nativeMode {
		return raw.Mode
	}

	return SynthesizeMode(raw.Attributes)
}

// SynthesizeMode maps attribute bits to a POSIX-style mode. The mapping is
// fixed:
//
//	reparse point:  0120777
//	directory:      0040755 (0040555 if read-only)
//	anything else:  0100644 (0100444 if read-only)
func SynthesizeMode(attrs schema.Attributes) uint32 {
	var mode uint32

	switch {
	case attrs.ReparsePoint:
		return schema.ModeSymlink | 0o777

	case attrs.Directory:
		mode = schema.ModeDir | 0o755

	default:
		mode = schema.ModeRegular | 0o644
	}

	if attrs.ReadOnly {
		mode &^= 0o222
	}

	return mode
}
