package main

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/config"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/engine"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/errors"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/filesystem"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/history"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/logging"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/paths"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/security"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/style"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

var (
	verbosity   int
	dryRun      bool
	recursive   bool
	removeEmpty bool
	configFile  string
	excludes    []string

	rootCmd = &cobra.Command{
		Use:   "tidyfiles SOURCE [DEST]",
		Short: "Organize a directory by file type",
		Long: `tidyfiles classifies every file in SOURCE by its extension and moves
it into a category subdirectory under DEST (SOURCE itself when DEST is
omitted). Existing files are never overwritten: name collisions get a
numeric suffix like "photo (1).jpg". Use --dry-run to preview exactly
what a live run would do.`,
		Args: cobra.RangeArgs(1, 2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE:          runSort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(style.NewRenderer().RenderError(err))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Preview changes without executing them")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is the XDG config dir)")

	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into source subdirectories")
	rootCmd.Flags().BoolVar(&removeEmpty, "remove-empty", false, "Remove source subdirectories emptied by a recursive run")
	rootCmd.Flags().StringArrayVar(&excludes, "exclude", nil, "Path to exclude from organizing (repeatable)")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(versionCmd)
}

// runSort is the default action: organize SOURCE into DEST
func runSort(cmd *cobra.Command, args []string) error {
	settings, appPaths, err := loadSettings()
	if err != nil {
		return err
	}

	sourceRoot, err := filepath.Abs(args[0])
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid source path %s", args[0])
	}
	destRoot := sourceRoot
	if len(args) == 2 {
		destRoot, err = filepath.Abs(args[1])
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid destination path %s", args[1])
		}
	}

	if err := security.ValidatePath(sourceRoot); err != nil {
		return err
	}
	if err := security.ValidatePath(destRoot); err != nil {
		return err
	}

	exclude := append([]string{}, settings.Excludes...)
	exclude = append(exclude, excludes...)
	// The engine must never organize its own housekeeping files
	exclude = append(exclude, appPaths.LogFilePath(), appPaths.HistoryFilePath(), appPaths.ConfigDir())

	fs := filesystem.NewOS()
	eng := engine.New(fs, engine.Options{
		SourceRoot:      sourceRoot,
		DestRoot:        destRoot,
		Table:           settings.ExtensionMap(),
		DryRun:          dryRun,
		Recursive:       recursive || settings.Recursive,
		RemoveEmptyDirs: removeEmpty || settings.RemoveEmptyDirs,
		Excludes:        exclude,
	})

	results, err := eng.Run()
	if err != nil {
		return err
	}

	if !dryRun {
		journal := history.NewJournal(fs, appPaths.HistoryFilePath())
		rec := history.NewRecord(sourceRoot, destRoot, results)
		if len(rec.Moves) > 0 {
			if err := journal.Append(rec); err != nil {
				log.Warn().Err(err).Msg("Failed to record run in history")
			}
		}
	}

	renderer := style.NewRenderer()
	fmt.Println(renderer.RenderResults(results, dryRun))
	fmt.Println(renderer.RenderSummary(types.Summarize(results), dryRun))

	return nil
}

// loadSettings resolves the app paths and the layered configuration
func loadSettings() (*config.Settings, *paths.Paths, error) {
	appPaths := paths.New()

	if configFile != "" {
		settings, err := config.LoadFile(configFile)
		return settings, appPaths, err
	}

	settings, err := config.Load(appPaths)
	return settings, appPaths, err
}
