package main

import (
	"fmt"

	"github.com/ruminaider/segmenu/internal/forest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the forest file for empty and duplicate ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := forest.Load(cfg.Forest)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items, ok\n", cfg.Forest, file.Count())
		return nil
	},
}
