package config

import (
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/classify"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
)

// Generate writes a starter config file with the built-in defaults to
// path, creating parent directories as needed. Refuses to overwrite
// an existing file.
func Generate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, "config file already exists: %s", path)
	}

	starter := Settings{
		FallbackCategory: classify.DefaultFallbackCategory,
		Excludes:         []string{},
		Categories:       classify.DefaultCategories(),
	}

	data, err := gotoml.Marshal(starter)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode starter config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad,
			"failed to write config file %s", path)
	}
	return nil
}
