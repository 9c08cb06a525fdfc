package classify

import (
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/logging"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
	"github.com/rs/zerolog"
)

// Classifier maps file entries to categories using an ExtensionMap
type Classifier struct {
	table  ExtensionMap
	logger zerolog.Logger
}

// NewClassifier creates a classifier over the given table
func NewClassifier(table ExtensionMap) *Classifier {
	return &Classifier{
		table:  table,
		logger: logging.GetLogger("classify"),
	}
}

// Classify returns the destination category for an entry. It never
// fails: directories, extension-less files, and unknown extensions all
// resolve to the fallback category.
func (c *Classifier) Classify(entry types.FileEntry) string {
	if entry.IsDirectory || entry.Extension == "" {
		return c.table.Fallback()
	}

	category, ok := c.table.Lookup(entry.Extension)
	if !ok {
		c.logger.Trace().
			Str("file", entry.Name).
			Str("extension", entry.Extension).
			Msg("No mapping for extension, using fallback")
		return c.table.Fallback()
	}
	return category
}
