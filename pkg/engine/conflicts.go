package engine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

// UniqueDestination probes for an unused path in the directory of
// candidate. It returns candidate itself when free, otherwise the
// first "name (N).ext" variant that neither exists on the filesystem
// nor is reported taken by the extra predicate. The predicate covers
// paths already planned in the current run, so two same-named sources
// never collide even in dry-run mode where nothing has moved yet.
func UniqueDestination(fsys types.FS, candidate string, taken func(string) bool) string {
	if !occupied(fsys, candidate) && !taken(candidate) {
		return candidate
	}

	dir := filepath.Dir(candidate)
	base := filepath.Base(candidate)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 1; ; i++ {
		probe := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if !occupied(fsys, probe) && !taken(probe) {
			return probe
		}
	}
}

// occupied reports whether anything sits at path, including broken
// symlinks, which still block a rename target.
func occupied(fsys types.FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}
