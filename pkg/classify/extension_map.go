package classify

import (
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

// DefaultFallbackCategory receives files whose extension has no
// configured mapping.
const DefaultFallbackCategory = "other"

// CategoryDef is one (category, extensions) pair from configuration.
// Order matters for reporting, which is why the table is a list and
// not a map.
type CategoryDef struct {
	Name       string   `koanf:"name" toml:"name"`
	Extensions []string `koanf:"extensions" toml:"extensions"`
}

// ExtensionMap is an immutable extension-to-category table.
// Each extension maps to exactly one category; when configuration
// defines an extension more than once, the last definition wins.
type ExtensionMap struct {
	categories []CategoryDef
	index      map[string]string
	fallback   string
}

// NewExtensionMap builds an ExtensionMap from ordered category
// definitions. An empty fallback selects DefaultFallbackCategory.
func NewExtensionMap(defs []CategoryDef, fallback string) ExtensionMap {
	if fallback == "" {
		fallback = DefaultFallbackCategory
	}

	index := make(map[string]string)
	for _, def := range defs {
		for _, ext := range def.Extensions {
			norm := types.NormalizeExtension(ext)
			if norm == "" {
				continue
			}
			// Last definition wins
			index[norm] = def.Name
		}
	}

	return ExtensionMap{
		categories: defs,
		index:      index,
		fallback:   fallback,
	}
}

// DefaultExtensionMap returns the built-in table
func DefaultExtensionMap() ExtensionMap {
	return NewExtensionMap(DefaultCategories(), DefaultFallbackCategory)
}

// DefaultCategories returns the built-in category definitions in
// presentation order
func DefaultCategories() []CategoryDef {
	return []CategoryDef{
		{Name: "documents", Extensions: []string{".txt", ".doc", ".docx", ".pdf"}},
		{Name: "images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif"}},
		{Name: "videos", Extensions: []string{".avi", ".mp4", ".mov", ".mkv"}},
		{Name: "music", Extensions: []string{".mp3", ".ogg", ".wav", ".flac"}},
		{Name: "archives", Extensions: []string{".zip", ".tar", ".gz", ".rar"}},
		{Name: "code", Extensions: []string{".py", ".js", ".html", ".css"}},
	}
}

// MergeCategories merges override definitions into base by category
// name. Overrides replace the extension list of a same-named base
// category; new categories are appended, preserving order.
func MergeCategories(base, overrides []CategoryDef) []CategoryDef {
	if len(overrides) == 0 {
		return base
	}

	merged := make([]CategoryDef, 0, len(base)+len(overrides))
	byName := make(map[string]int)
	for _, def := range base {
		byName[def.Name] = len(merged)
		merged = append(merged, def)
	}
	for _, def := range overrides {
		if i, ok := byName[def.Name]; ok {
			merged[i] = def
			continue
		}
		byName[def.Name] = len(merged)
		merged = append(merged, def)
	}
	return merged
}

// Lookup returns the category for a normalized extension
func (m ExtensionMap) Lookup(ext string) (string, bool) {
	category, ok := m.index[types.NormalizeExtension(ext)]
	return category, ok
}

// Fallback returns the reserved fallback category name
func (m ExtensionMap) Fallback() string {
	return m.fallback
}

// Categories returns the category names in presentation order, with
// the fallback category last
func (m ExtensionMap) Categories() []string {
	names := make([]string, 0, len(m.categories)+1)
	for _, def := range m.categories {
		names = append(names, def.Name)
	}
	return append(names, m.fallback)
}
