package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/config"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/paths"
)

// testPaths points the config directory at an isolated temp dir
func testPaths(t *testing.T) *paths.Paths {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	return paths.New()
}

func writeConfig(t *testing.T, p *paths.Paths, name, content string) {
	t.Helper()
	path := filepath.Join(p.ConfigDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	t.Run("defaults_without_user_config", func(t *testing.T) {
		settings, err := config.Load(testPaths(t))
		require.NoError(t, err)

		assert.Equal(t, "other", settings.FallbackCategory)
		assert.False(t, settings.Recursive)
		assert.False(t, settings.RemoveEmptyDirs)
		assert.Len(t, settings.Categories, 6)

		table := settings.ExtensionMap()
		category, ok := table.Lookup(".jpg")
		assert.True(t, ok)
		assert.Equal(t, "images", category)
	})

	t.Run("toml_user_config_overlays_defaults", func(t *testing.T) {
		p := testPaths(t)
		writeConfig(t, p, "tidyfiles.toml", `
fallback_category = "misc"
recursive = true

[[categories]]
name = "ebooks"
extensions = [".epub", ".mobi"]
`)

		settings, err := config.Load(p)
		require.NoError(t, err)

		assert.Equal(t, "misc", settings.FallbackCategory)
		assert.True(t, settings.Recursive)

		table := settings.ExtensionMap()
		category, ok := table.Lookup(".epub")
		assert.True(t, ok)
		assert.Equal(t, "ebooks", category)

		// Default buckets survive a partial user file
		category, ok = table.Lookup(".pdf")
		assert.True(t, ok)
		assert.Equal(t, "documents", category)
	})

	t.Run("user_category_replaces_same_name", func(t *testing.T) {
		p := testPaths(t)
		writeConfig(t, p, "tidyfiles.toml", `
[[categories]]
name = "images"
extensions = [".heic"]
`)

		settings, err := config.Load(p)
		require.NoError(t, err)

		table := settings.ExtensionMap()
		category, ok := table.Lookup(".heic")
		assert.True(t, ok)
		assert.Equal(t, "images", category)

		_, ok = table.Lookup(".jpg")
		assert.False(t, ok)
	})

	t.Run("yaml_user_config", func(t *testing.T) {
		p := testPaths(t)
		writeConfig(t, p, "tidyfiles.yaml", `
fallback_category: unsorted
excludes:
  - /home/user/keep
`)

		settings, err := config.Load(p)
		require.NoError(t, err)

		assert.Equal(t, "unsorted", settings.FallbackCategory)
		assert.Contains(t, settings.Excludes, "/home/user/keep")
	})

	t.Run("toml_preferred_over_yaml", func(t *testing.T) {
		p := testPaths(t)
		writeConfig(t, p, "tidyfiles.toml", `fallback_category = "from-toml"`)
		writeConfig(t, p, "tidyfiles.yaml", `fallback_category: from-yaml`)

		settings, err := config.Load(p)
		require.NoError(t, err)
		assert.Equal(t, "from-toml", settings.FallbackCategory)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("explicit_path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte(`fallback_category = "misc"`), 0644))

		settings, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "misc", settings.FallbackCategory)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[[[not toml"), 0644))

		_, err := config.LoadFile(path)
		require.Error(t, err)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("writes_loadable_starter_config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "tidyfiles.toml")

		require.NoError(t, config.Generate(path))

		settings, err := config.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "other", settings.FallbackCategory)
		assert.Len(t, settings.Categories, 6)
	})

	t.Run("refuses_to_overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tidyfiles.toml")
		require.NoError(t, config.Generate(path))

		err := config.Generate(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
