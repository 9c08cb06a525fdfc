package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/classify"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/logging"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/paths"
)

// Load builds Settings from the embedded defaults overlaid with the
// first user config file found in the config directory. Category
// definitions are merged by name rather than wholesale replaced, so a
// user file that redefines "images" keeps the other default buckets.
func Load(p *paths.Paths) (*Settings, error) {
	logger := logging.GetLogger("config")

	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	userPath := findUserConfig(p)
	if userPath == "" {
		logger.Debug().Msg("No user config file, using defaults")
		return defaults, nil
	}

	user, err := loadFile(userPath)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", userPath).Msg("Loaded user config")

	return merge(defaults, user), nil
}

// LoadFile builds Settings from the defaults overlaid with an explicit
// config file path, for the --config flag.
func LoadFile(path string) (*Settings, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	user, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	return merge(defaults, user), nil
}

// loadDefaults parses the embedded defaults.toml
func loadDefaults() (*Settings, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse built-in defaults")
	}
	return unmarshal(k)
}

// loadFile parses one user config file, picking the parser from the
// file extension
func loadFile(path string) (*Settings, error) {
	k := koanf.New(".")

	var parser koanf.Parser = toml.Parser()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to load config from %s", path)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Settings, error) {
	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid configuration")
	}
	return &s, nil
}

// merge overlays user settings on base. Scalar zero values from the
// user file do not clobber base values; the category table is merged
// by name.
func merge(base, user *Settings) *Settings {
	merged := *base

	if user.FallbackCategory != "" {
		merged.FallbackCategory = user.FallbackCategory
	}
	if user.Recursive {
		merged.Recursive = true
	}
	if user.RemoveEmptyDirs {
		merged.RemoveEmptyDirs = true
	}
	if len(user.Excludes) > 0 {
		merged.Excludes = append(append([]string{}, base.Excludes...), user.Excludes...)
	}
	merged.Categories = classify.MergeCategories(base.Categories, user.Categories)

	return &merged
}

// findUserConfig returns the first existing candidate config file
func findUserConfig(p *paths.Paths) string {
	for _, candidate := range p.ConfigFilePaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
