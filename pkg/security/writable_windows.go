//go:build windows

package security

import (
	"io/fs"
)

// isWritable approximates write access from the file mode. Windows has
// no access(2); ACL inspection is not worth the dependency here.
func isWritable(_ string, info fs.FileInfo) bool {
	return info.Mode().Perm()&0200 != 0
}
