//go:build !windows

package security

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// isWritable checks effective write access via access(2)
func isWritable(path string, _ fs.FileInfo) bool {
	return unix.Access(path, unix.W_OK) == nil
}
