package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/config"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/paths"
)

var genconfigOutput string

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Write a starter config file",
	Long: `Write a config file with the built-in defaults, ready to edit.
Without --output it goes to the XDG config directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := genconfigOutput
		if target == "" {
			target = filepath.Join(paths.New().ConfigDir(), "tidyfiles.toml")
		}

		if err := config.Generate(target); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", target)
		return nil
	},
}

func init() {
	genconfigCmd.Flags().StringVarP(&genconfigOutput, "output", "o", "", "Destination path for the generated config")
}
