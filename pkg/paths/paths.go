// Package paths provides centralized path handling for tidyfiles.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for tidyfiles
	EnvConfigDir = "TIDYFILES_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for tidyfiles
	EnvDataDir = "TIDYFILES_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for tidyfiles
	EnvStateDir = "TIDYFILES_STATE_DIR"
)

// Default file names
const (
	// AppDirName is the directory name for tidyfiles-specific files
	AppDirName = "tidyfiles"

	// LogFileName is the name of the log file
	LogFileName = "tidyfiles.log"

	// HistoryFileName is the name of the run history journal
	HistoryFileName = "history.json"
)

// Config file names probed in order inside ConfigDir
var configFileNames = []string{"tidyfiles.toml", "tidyfiles.yaml"}

// Paths provides centralized path management for tidyfiles
type Paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

// New creates a Paths instance from the environment, falling back to
// the XDG base directories.
func New() *Paths {
	p := &Paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		dataDir:   filepath.Join(xdg.DataHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = dir
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = dir
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = dir
	}

	return p
}

// ConfigDir returns the configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// DataDir returns the data directory
func (p *Paths) DataDir() string {
	return p.dataDir
}

// StateDir returns the state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the append-only log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// HistoryFilePath returns the path of the run history journal
func (p *Paths) HistoryFilePath() string {
	return filepath.Join(p.dataDir, HistoryFileName)
}

// ConfigFilePaths returns the candidate config file paths in probe order
func (p *Paths) ConfigFilePaths() []string {
	candidates := make([]string, 0, len(configFileNames))
	for _, name := range configFileNames {
		candidates = append(candidates, filepath.Join(p.configDir, name))
	}
	return candidates
}
