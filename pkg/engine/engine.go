package engine

import (
	"io/fs"
	"path/filepath"
	"sort"
	"time"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/classify"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/logging"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/paths"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a single engine run. The extension table is
// passed in as an immutable value; the engine reads no ambient state.
type Options struct {
	// SourceRoot is the directory being organized (must exist)
	SourceRoot string

	// DestRoot is the directory receiving category buckets. Created
	// lazily in live mode. Defaults to SourceRoot when empty.
	DestRoot string

	// Table maps extensions to categories
	Table classify.ExtensionMap

	// DryRun computes and reports every decision without mutating
	// the filesystem
	DryRun bool

	// Recursive descends into source subdirectories instead of
	// skipping them
	Recursive bool

	// RemoveEmptyDirs removes source subdirectories left empty after
	// a live recursive run
	RemoveEmptyDirs bool

	// Excludes are absolute paths (and their subtrees) that are never
	// enumerated
	Excludes []string
}

// Engine walks a source tree and relocates entries into category
// buckets under the destination root.
type Engine struct {
	fs         types.FS
	opts       Options
	classifier *classify.Classifier
	logger     zerolog.Logger

	// bucketPaths are the engine's own output directories, excluded
	// from enumeration so a run never organizes its own output
	bucketPaths map[string]bool

	// planned holds destinations claimed by earlier plans in this run
	planned map[string]bool
}

// New creates an engine for one run over the given filesystem
func New(fsys types.FS, opts Options) *Engine {
	if opts.DestRoot == "" {
		opts.DestRoot = opts.SourceRoot
	}
	opts.SourceRoot = filepath.Clean(opts.SourceRoot)
	opts.DestRoot = filepath.Clean(opts.DestRoot)

	buckets := make(map[string]bool)
	for _, category := range opts.Table.Categories() {
		buckets[filepath.Join(opts.DestRoot, category)] = true
	}

	return &Engine{
		fs:          fsys,
		opts:        opts,
		classifier:  classify.NewClassifier(opts.Table),
		logger:      logging.GetLogger("engine"),
		bucketPaths: buckets,
		planned:     make(map[string]bool),
	}
}

// Run validates the roots, enumerates eligible entries, and produces
// one TransferResult per entry. Only configuration problems surface
// as an error; per-entry failures are recorded in the results.
func (e *Engine) Run() ([]types.TransferResult, error) {
	defer logging.LogDuration(time.Now(), "organize")

	e.logger.Debug().
		Str("source", e.opts.SourceRoot).
		Str("dest", e.opts.DestRoot).
		Bool("dryRun", e.opts.DryRun).
		Bool("recursive", e.opts.Recursive).
		Msg("Starting run")

	if err := paths.ValidateSource(e.fs, e.opts.SourceRoot); err != nil {
		return nil, err
	}
	if err := paths.ValidateDestination(e.fs, e.opts.DestRoot); err != nil {
		return nil, err
	}

	var results []types.TransferResult
	visitedDirs, err := e.walk(e.opts.SourceRoot, &results)
	if err != nil {
		return nil, err
	}

	if e.opts.RemoveEmptyDirs && e.opts.Recursive && !e.opts.DryRun {
		e.removeEmptyDirs(visitedDirs)
	}

	summary := types.Summarize(results)
	e.logger.Info().
		Int("moved", summary.Moved).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Bool("dryRun", e.opts.DryRun).
		Msg("Run complete")

	return results, nil
}

// walk processes the direct children of dir in sorted order,
// descending into subdirectories when recursive mode is on. It
// returns every subdirectory it entered, for the empty-dir sweep.
func (e *Engine) walk(dir string, results *[]types.TransferResult) ([]string, error) {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		if dir == e.opts.SourceRoot {
			return nil, errors.Wrapf(err, errors.ErrSourceNotFound,
				"cannot read source directory: %s", dir)
		}
		// Unreadable subdirectory: record the skip, keep going
		*results = append(*results, skipResult(dir, types.SkipUnreadable))
		return nil, nil
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var visited []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if e.isExcluded(path, entry.IsDir()) {
			e.logger.Debug().Str("path", path).Msg("Entry excluded from enumeration")
			continue
		}

		if entry.IsDir() {
			if !e.opts.Recursive {
				*results = append(*results, skipResult(path, types.SkipDirectory))
				continue
			}
			visited = append(visited, path)
			sub, err := e.walk(path, results)
			if err != nil {
				return nil, err
			}
			visited = append(visited, sub...)
			continue
		}

		*results = append(*results, e.processEntry(path, entry))
	}

	return visited, nil
}

// isExcluded filters out the engine's own output and user excludes:
// the destination root and everything under it (when it is a separate
// tree), the category buckets (when destination and source coincide),
// and configured exclude paths.
func (e *Engine) isExcluded(path string, isDir bool) bool {
	if path == e.opts.DestRoot {
		return true
	}
	if e.opts.DestRoot != e.opts.SourceRoot && paths.IsWithin(e.opts.DestRoot, path) {
		return true
	}
	if isDir && e.bucketPaths[path] {
		return true
	}
	for _, excl := range e.opts.Excludes {
		if path == excl || paths.IsWithin(excl, path) {
			return true
		}
	}
	return false
}

// removeEmptyDirs removes visited source subdirectories that the
// transfer pass emptied, deepest first
func (e *Engine) removeEmptyDirs(dirs []string) {
	sort.Slice(dirs, func(i, j int) bool {
		return len(dirs[i]) > len(dirs[j])
	})
	for _, dir := range dirs {
		entries, err := e.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := e.fs.Remove(dir); err != nil {
			e.logger.Warn().Err(err).Str("dir", dir).Msg("Failed to remove empty directory")
			continue
		}
		e.logger.Debug().Str("dir", dir).Msg("Removed empty directory")
	}
}

// skipResult builds the terminal result for an ineligible entry
func skipResult(path string, reason types.SkipReason) types.TransferResult {
	return types.TransferResult{
		Plan: types.TransferPlan{
			Source:     path,
			Action:     types.ActionSkip,
			SkipReason: reason,
		},
		Success: true,
	}
}

// statEntry resolves the entry's metadata, distinguishing broken
// symlinks from plain unreadable entries
func (e *Engine) statEntry(path string) (types.SkipReason, bool) {
	info, err := e.fs.Lstat(path)
	if err != nil {
		return types.SkipUnreadable, false
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		if _, err := e.fs.Stat(path); err != nil {
			target, _ := e.fs.Readlink(path)
			e.logger.Debug().
				Str("path", path).
				Str("target", target).
				Msg("Symlink target missing")
			return types.SkipBrokenSymlink, false
		}
	}
	return "", true
}
