// Package security guards against organizing directories that should
// never be touched: operating system trees and roots the current user
// cannot write to.
package security

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/logging"
)

// IsSafePath reports whether path may be organized. When it may not,
// the second return value carries a human-readable reason.
func IsSafePath(path string) (bool, string) {
	logger := logging.GetLogger("security")

	abs, err := filepath.Abs(path)
	if err != nil {
		// Unresolvable paths are treated as unsafe
		logger.Warn().Err(err).Str("path", path).Msg("Failed to resolve path")
		return false, "path could not be resolved"
	}

	if isSystemPath(abs) {
		logger.Warn().Str("path", abs).Msg("Refusing to touch system directory")
		return false, "path is inside a system directory"
	}

	if info, err := os.Stat(abs); err == nil {
		if !isWritable(abs, info) {
			return false, "path is not writable"
		}
	}

	return true, ""
}

// ValidatePath returns a configuration error when path is unsafe
func ValidatePath(path string) error {
	if safe, reason := IsSafePath(path); !safe {
		return errors.Newf(errors.ErrUnsafePath, "%s: %s", reason, path).
			WithDetail("path", path)
	}
	return nil
}

// isSystemPath reports whether abs is a protected system tree or
// nested inside one
func isSystemPath(abs string) bool {
	for _, sys := range systemPaths() {
		if abs == sys || strings.HasPrefix(abs, sys+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// systemPaths returns protected roots for the current platform
func systemPaths() []string {
	switch runtime.GOOS {
	case "windows":
		drive := os.Getenv("SystemDrive")
		if drive == "" {
			drive = "C:"
		}
		return []string{
			filepath.Join(drive, "Windows"),
			filepath.Join(drive, "Program Files"),
			filepath.Join(drive, "Program Files (x86)"),
			filepath.Join(drive, "ProgramData"),
		}
	case "darwin":
		return []string{
			"/System", "/Library", "/private",
			"/bin", "/sbin", "/usr", "/etc", "/var", "/dev",
		}
	default:
		return []string{
			"/etc", "/usr", "/bin", "/sbin", "/lib", "/lib64",
			"/boot", "/proc", "/sys", "/dev", "/var", "/run",
		}
	}
}
