package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"mandala/cmd/mandala/tui"
	"mandala/cmd/mandala/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a grid in the interactive editor",
	Long:  `Open the grid in a full-screen editor: move with the arrow keys, nudge the selected bias with + and -, type an exact value with e, and save with s.`,
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	g, path, err := resolveGrid()
	if err != nil {
		return err
	}
	// Grids that came from a preset or the built-in default have no
	// file yet; they save as a new profile named after the grid.
	if path == "" {
		path = filepath.Join(cfg.ProfileDir, g.Name+".json")
	}
	return tui.Run(g, path, ui.ThemeByName(cfg.Theme))
}

func init() {
	rootCmd.AddCommand(editCmd)
}
