package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/filesystem"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/history"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/paths"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/style"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

var undoCmd = &cobra.Command{
	Use:   "undo [run-id]",
	Short: "Reverse a recorded run",
	Long: `Move every file of a recorded run back to where it came from, last
move first. Without a run id the most recent run is reversed. Combine
with --dry-run to preview the restore.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appPaths := paths.New()
		fs := filesystem.NewOS()
		journal := history.NewJournal(fs, appPaths.HistoryFilePath())

		var rec *history.Record
		var err error
		if len(args) == 1 {
			rec, err = journal.Find(args[0])
		} else {
			rec, err = journal.Last()
		}
		if err != nil {
			return err
		}

		results := journal.Undo(*rec, dryRun)
		summary := types.Summarize(results)

		if !dryRun && summary.Failed == 0 {
			if err := journal.Remove(rec.ID); err != nil {
				log.Warn().Err(err).Str("id", rec.ID).Msg("Failed to drop undone run from history")
			}
		}

		renderer := style.NewRenderer()
		fmt.Println(renderer.RenderResults(results, dryRun))
		fmt.Println(renderer.RenderSummary(summary, dryRun))
		return nil
	},
}
