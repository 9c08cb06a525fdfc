package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles populates the filesystem with files keyed by path
func WriteFiles(t *testing.T, fs *MemoryFS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
}

// MakeDirs creates each directory, parents included
func MakeDirs(t *testing.T, fs *MemoryFS, dirs ...string) {
	t.Helper()
	for _, dir := range dirs {
		require.NoError(t, fs.MkdirAll(dir, 0755))
	}
}

// Exists reports whether anything sits at path
func Exists(fs *MemoryFS, path string) bool {
	_, err := fs.Lstat(path)
	return err == nil
}
