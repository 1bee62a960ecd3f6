package schema

import (
	"os"
	"os/user"
	"path/filepath"
	"time"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Remove wraps around [os.Remove].
func (*OS) Remove(name string) error {
	return os.Remove(name)
}

// Readlink wraps around [os.Readlink].
func (*OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// OpenFile wraps around [os.OpenFile].
func (*OS) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// EvalSymlinks wraps around [filepath.EvalSymlinks].
func (*OS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Lstat wraps around [os.Lstat].
func (*OS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Rename wraps around [os.Rename].
func (*OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Mkdir wraps around [os.Mkdir].
func (*OS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

// Symlink wraps around [os.Symlink].
func (*OS) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

// Chmod wraps around [os.Chmod].
func (*OS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

// Chtimes wraps around [os.Chtimes].
func (*OS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}

// Chown wraps around [os.Chown].
func (*OS) Chown(name string, uid, gid int) error {
	return os.Chown(name, uid, gid)
}

// Lchown wraps around [os.Lchown].
func (*OS) Lchown(name string, uid, gid int) error {
	return os.Lchown(name, uid, gid)
}

// UserDB is an implementation wrapping the identity database functions.
type UserDB struct{}

// LookupId wraps around [user.LookupId].
//
//nolint:revive,stylecheck
func (*UserDB) LookupId(uid string) (*user.User, error) {
	return user.LookupId(uid)
}

// LookupGroupId wraps around [user.LookupGroupId].
//
//nolint:revive,stylecheck
func (*UserDB) LookupGroupId(gid string) (*user.Group, error) {
	return user.LookupGroupId(gid)
}

// Lookup wraps around [user.Lookup].
func (*UserDB) Lookup(username string) (*user.User, error) {
	return user.Lookup(username)
}

// LookupGroup wraps around [user.LookupGroup].
func (*UserDB) LookupGroup(name string) (*user.Group, error) {
	return user.LookupGroup(name)
}
