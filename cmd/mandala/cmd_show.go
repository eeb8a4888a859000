// Package main - grid display commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mandala/internal/grid"
)

var showDemo bool

// showCmd displays the working grid
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the working grid, its signature, and the consciousness mapping",
	RunE:  runShow,
}

// demoCmd is show with the weighted-prompt demo forced on
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Display the working grid with a weighted-prompt demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		showDemo = true
		return runShow(cmd, args)
	},
}

func runShow(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGrid()
	if err != nil {
		return err
	}

	demoTask := ""
	if showDemo {
		demoTask = cfg.DemoTask
	}
	fmt.Println(renderShow(g, demoTask))
	return nil
}

// renderShow builds the full-board view: banner, board, signature, the
// consciousness mapping, and optionally the weighted-prompt demo.
func renderShow(g *grid.Grid, demoTask string) string {
	banner := strings.Repeat("═", 50)
	lines := []string{
		"",
		banner,
		fmt.Sprintf("  Mandala Grid: %s (v%s)", g.Name, g.Version),
		banner,
		"",
		g.Display(),
		"",
		fmt.Sprintf("Personality Signature: %s", g.Signature()),
		"",
		"Eight Consciousnesses Mapping:",
		g.ConsciousnessMap(),
	}
	if demoTask != "" {
		lines = append(lines,
			"",
			strings.Repeat("─", 50),
			"Demo: Weighted prompt for a sample task",
			"",
			g.WeightedPrompt(demoTask),
		)
	}
	return strings.Join(lines, "\n")
}

func init() {
	showCmd.Flags().BoolVar(&showDemo, "demo", false, "Append a weighted-prompt demo to the view")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(demoCmd)
}
