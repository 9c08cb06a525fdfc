package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/filesystem"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/history"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/paths"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs",
	Long:  `List every live run recorded in the history journal, oldest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		appPaths := paths.New()
		journal := history.NewJournal(filesystem.NewOS(), appPaths.HistoryFilePath())

		records, err := journal.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No runs recorded yet")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %s  %s (%d files)\n",
				formatBold(rec.ID),
				rec.Timestamp.Local().Format(time.DateTime),
				rec.SourceRoot,
				len(rec.Moves))
		}
		return nil
	},
}
