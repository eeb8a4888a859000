// Package main - position query commands.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mandala/internal/grid"
)

// topCmd ranks the strongest positions
var topCmd = &cobra.Command{
	Use:   "top [n]",
	Short: "Show the n highest-bias positions (default 3, center excluded)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTop,
}

// getCmd shows one position in full
var getCmd = &cobra.Command{
	Use:   "get <index>",
	Short: "Show a single position by its grid index (0-8)",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runTop(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGrid()
	if err != nil {
		return err
	}

	n := 3
	if len(args) == 1 {
		n, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid count %q: %w", args[0], err)
		}
	}

	top := g.TopN(n)
	fmt.Printf("Top %d positions of [%s]:\n", len(top), g.Name)
	for i, p := range top {
		fmt.Printf("  %d. %s (bias=%s) — %s\n", i+1, p.Label, grid.FormatBias(p.Bias), p.Function)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGrid()
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	p, err := g.Get(index)
	if err != nil {
		return err
	}

	fmt.Print(renderPosition(p))
	return nil
}

// renderPosition builds the one-position detail view.
func renderPosition(p *grid.Position) string {
	return fmt.Sprintf(`Position %d: %s (%s)
  Consciousness: %s (%s)
  Function:      %s
  Bias:          %s
  %s
`, p.Index, p.Label, p.LabelZH, p.Consciousness, p.ConsciousnessZH, p.Function, grid.FormatBias(p.Bias), p.Description)
}

func init() {
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(getCmd)
}
