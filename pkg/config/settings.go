package config

import (
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/classify"
)

// Settings is the merged application configuration. Values come from
// the embedded defaults, then a user config file, then CLI flags -
// later sources override earlier ones.
type Settings struct {
	// FallbackCategory receives files with no extension mapping
	FallbackCategory string `koanf:"fallback_category" toml:"fallback_category"`

	// Recursive descends into source subdirectories
	Recursive bool `koanf:"recursive" toml:"recursive"`

	// RemoveEmptyDirs removes source subdirectories emptied by a live
	// recursive run
	RemoveEmptyDirs bool `koanf:"remove_empty_dirs" toml:"remove_empty_dirs"`

	// Excludes are paths never enumerated
	Excludes []string `koanf:"excludes" toml:"excludes"`

	// Categories is the ordered extension-to-category table
	Categories []classify.CategoryDef `koanf:"categories" toml:"categories"`
}

// ExtensionMap builds the immutable lookup table from the settings
func (s *Settings) ExtensionMap() classify.ExtensionMap {
	return classify.NewExtensionMap(s.Categories, s.FallbackCategory)
}
