package types

import (
	"io/fs"
)

// FS is the filesystem interface required for tidyfiles operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Move operations
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// Symlink-aware operations - implementations without real symlink
	// support may let Lstat fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
	Readlink(name string) (string, error)
}
