// Package main - mirror analysis and background reading.
package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"mandala/cmd/mandala/ui"
	"mandala/internal/grid"
)

//go:embed about.md
var aboutMarkdown string

// mirrorCmd reads the grid back as a portrait of its author
var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Run the mirror-effect analysis on the working grid",
	Long: `Reads the working grid as a self-portrait: the strongest positions,
the deprioritized ones, and the center. Whoever tuned the weights put
their own cognitive habits into them; this surfaces the reflection.`,
	RunE: runMirror,
}

// aboutCmd renders the framework background
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Explain the mandala grid and its Eight Consciousnesses mapping",
	RunE:  runAbout,
}

func runMirror(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGrid()
	if err != nil {
		return err
	}
	fmt.Println(grid.MirrorAnalysis(g))
	return nil
}

func runAbout(cmd *cobra.Command, args []string) error {
	theme := ui.ThemeByName(cfg.Theme)

	wrap := cfg.WordWrap
	if wrap <= 0 {
		wrap = 80
	}
	var renderer *glamour.TermRenderer
	var err error
	if theme.IsDark {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	} else {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(wrap),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to build markdown renderer: %w", err)
	}

	out, err := renderer.Render(aboutMarkdown)
	if err != nil {
		return fmt.Errorf("failed to render about text: %w", err)
	}
	fmt.Print(out)
	return nil
}

func init() {
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(aboutCmd)
}
