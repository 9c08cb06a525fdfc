package types

import (
	"path/filepath"
	"strings"
)

// FileEntry represents one filesystem object under the source root at
// enumeration time.
type FileEntry struct {
	// Path is the absolute path to the entry
	Path string

	// Name is the base name of the entry
	Name string

	// Extension is the normalized extension (lower-cased, with leading
	// dot), or empty when the entry has none
	Extension string

	// IsDirectory reports whether the entry is a directory
	IsDirectory bool
}

// NewFileEntry builds a FileEntry for the given absolute path.
func NewFileEntry(path string, isDir bool) FileEntry {
	name := filepath.Base(path)
	return FileEntry{
		Path:        path,
		Name:        name,
		Extension:   NormalizeExtension(filepath.Ext(name)),
		IsDirectory: isDir,
	}
}

// NormalizeExtension lower-cases an extension and guarantees a leading
// dot. An empty string stays empty, so extension-less files keep a
// distinct representation.
func NormalizeExtension(ext string) string {
	if ext == "" {
		return ""
	}
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
