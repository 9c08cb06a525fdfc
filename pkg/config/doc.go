// Package config loads tidyfiles settings in layers: embedded
// defaults, then the user's config file (TOML or YAML) from the XDG
// config directory, then whatever the CLI overrides. The extension
// table is merged by category name so partial user tables extend the
// defaults instead of replacing them.
package config
