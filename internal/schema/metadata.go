package schema

import "time"

// NoID is the sentinel for a user or group identifier on a platform without a
// numeric ownership model. It is never a valid identifier.
const NoID = -1

// POSIX-style file type and permission bits, as used in [FileStat.Mode]. They
// are defined here (and not taken from a syscall package) so that synthesized
// modes are identical on every platform.
const (
	ModeTypeMask uint32 = 0o170000
	ModeSymlink  uint32 = 0o120000
	ModeRegular  uint32 = 0o100000
	ModeDir      uint32 = 0o040000
	ModePermMask uint32 = 0o7777
)

// FileStat is an immutable snapshot of one filesystem entry at query time. It
// is a value type, later changes to the entry are never reflected in an
// already produced [FileStat].
type FileStat struct {
	// Path is the path as it was given to the query.
	Path string

	IsFile      bool
	IsDirectory bool
	IsSymlink   bool

	// Mode holds the POSIX-style type and permission bits. It is synthesized
	// on platforms without native mode bits.
	Mode uint32

	// UserID and GroupID are either both [NoID] or both >= 0.
	UserID  int
	GroupID int

	SizeBytes  int64
	ModifiedAt time.Time

	// SymlinkTarget is the unresolved link content, only set if IsSymlink.
	SymlinkTarget string
}

// NameResolver describes methods needed to resolve identifiers to names.
type NameResolver interface {
	GetUserName(uid int) (string, error)
	GetGroupName(gid int) (string, error)
}

// HasOwnership reports if the [FileStat] carries numeric ownership, that is if
// it was produced on a platform with a POSIX-style identity model.
func (s FileStat) HasOwnership() bool {
	return s.UserID != NoID && s.GroupID != NoID
}

// Perm returns only the permission bits of the [FileStat] mode.
func (s FileStat) Perm() uint32 {
	return s.Mode & ModePermMask
}

// UserName resolves the owning user's name on demand using a [NameResolver].
func (s FileStat) UserName(r NameResolver) (string, error) {
	return r.GetUserName(s.UserID)
}

// GroupName resolves the owning group's name on demand using a [NameResolver].
func (s FileStat) GroupName(r NameResolver) (string, error) {
	return r.GetGroupName(s.GroupID)
}

// Attributes are the attribute bits of platforms that have no native mode,
// from which a POSIX-style mode is synthesized.
type Attributes struct {
	ReadOnly     bool
	Directory    bool
	ReparsePoint bool
}

// RawStat is the unnormalized result of a native metadata call. Fields the
// platform does not know of are left at their zero value (Mode) or at [NoID]
// (UID, GID).
type RawStat struct {
	Mode       uint32
	UID        int
	GID        int
	Size       int64
	ModifiedAt time.Time
	Attributes Attributes
}

// ResolvedEntry is the result of resolving a symbolic link.
type ResolvedEntry struct {
	// Path is the resolved path, made from the link's content.
	Path string

	// Target is the raw content of the last link that was read.
	Target string

	// IsSymlink reports if Path itself is still a link, which can only be
	// the case when resolving a single hop.
	IsSymlink bool

	// Hops is the amount of links that were read to arrive at Path.
	Hops int
}

// OwnershipRequest is a transient request for an ownership change. User and
// Group accept either a name or a numeric identifier, an empty string leaves
// the respective ownership unchanged.
type OwnershipRequest struct {
	Path      string
	User      string
	Group     string
	Recursive bool
}

// IsEmpty reports if the [OwnershipRequest] requests no change at all.
func (r OwnershipRequest) IsEmpty() bool {
	return r.User == "" && r.Group == ""
}

// Outcome is the result of an operation on a single filesystem entry.
type Outcome struct {
	Path string
	Err  error
}

// Failed reports if the [Outcome] is a failure.
func (o Outcome) Failed() bool {
	return o.Err != nil
}
