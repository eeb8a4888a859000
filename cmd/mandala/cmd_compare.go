// Package main - grid comparison command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mandala/internal/grid"
)

// compareCmd diffs two grids position by position
var compareCmd = &cobra.Command{
	Use:   "compare <grid-a> <grid-b>",
	Short: "Compare two grids and highlight bias differences",
	Long: `Loads two grids and reports every position whose bias differs, plus
both personality signatures. Each argument is a preset name or a
profile path.

Example:
  mandala compare quan-default skeptic
  mandala compare team.json experiment.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, _, err := loadRef(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}
	b, _, err := loadRef(args[1])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[1], err)
	}
	logger.Debug("comparing grids", zap.String("a", a.Name), zap.String("b", b.Name))

	out, err := grid.Compare(a, b)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
