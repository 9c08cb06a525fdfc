package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/engine"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/testutil"
)

func never(string) bool { return false }

func TestUniqueDestination(t *testing.T) {
	t.Run("free_path_returned_unchanged", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.MakeDirs(t, fs, "/dst/images")

		got := engine.UniqueDestination(fs, "/dst/images/photo.jpg", never)
		assert.Equal(t, "/dst/images/photo.jpg", got)
	})

	t.Run("suffix_inserted_before_extension", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.WriteFiles(t, fs, map[string]string{"/dst/images/photo.jpg": "x"})

		got := engine.UniqueDestination(fs, "/dst/images/photo.jpg", never)
		assert.Equal(t, "/dst/images/photo (1).jpg", got)
	})

	t.Run("counter_advances_past_taken_variants", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.WriteFiles(t, fs, map[string]string{
			"/dst/images/photo.jpg":     "x",
			"/dst/images/photo (1).jpg": "x",
			"/dst/images/photo (2).jpg": "x",
		})

		got := engine.UniqueDestination(fs, "/dst/images/photo.jpg", never)
		assert.Equal(t, "/dst/images/photo (3).jpg", got)
	})

	t.Run("extensionless_name", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.WriteFiles(t, fs, map[string]string{"/dst/other/README": "x"})

		got := engine.UniqueDestination(fs, "/dst/other/README", never)
		assert.Equal(t, "/dst/other/README (1)", got)
	})

	t.Run("predicate_counts_as_occupied", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.MakeDirs(t, fs, "/dst/documents")

		planned := map[string]bool{
			"/dst/documents/a.txt":     true,
			"/dst/documents/a (1).txt": true,
		}
		got := engine.UniqueDestination(fs, "/dst/documents/a.txt", func(p string) bool {
			return planned[p]
		})
		assert.Equal(t, "/dst/documents/a (2).txt", got)
	})

	t.Run("broken_symlink_blocks_target", func(t *testing.T) {
		fs := testutil.NewMemoryFS()
		testutil.MakeDirs(t, fs, "/dst/images")
		require.NoError(t, fs.Symlink("/nowhere", "/dst/images/photo.jpg"))

		got := engine.UniqueDestination(fs, "/dst/images/photo.jpg", never)
		assert.Equal(t, "/dst/images/photo (1).jpg", got)
	})
}
