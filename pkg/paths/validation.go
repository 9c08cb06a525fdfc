package paths

import (
	"path/filepath"
	"strings"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

// ValidateSource verifies that the source root exists and is a
// directory. Violations are configuration errors that abort the run
// before any entry is processed.
func ValidateSource(fs types.FS, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceNotFound,
			"source directory does not exist: %s", path)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrSourceNotDir,
			"source path is not a directory: %s", path)
	}
	return nil
}

// ValidateDestination verifies that the destination root, if present,
// is a directory. A missing destination is fine - it is created
// lazily on first move.
func ValidateDestination(fs types.FS, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return nil
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrDestNotDir,
			"destination path is not a directory: %s", path)
	}
	return nil
}

// IsWithin reports whether child is parent itself or nested anywhere
// under it. Both paths must be absolute and cleaned.
func IsWithin(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
