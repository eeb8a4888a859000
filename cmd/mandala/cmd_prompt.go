// Package main - prompt generation and profile export commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mandala/internal/grid"
	"mandala/internal/profile"
)

var exportFormat string

// promptCmd renders the weighted system prompt for a task
var promptCmd = &cobra.Command{
	Use:   "prompt [task...]",
	Short: "Generate a weighted reasoning prompt for a task",
	Long: `Renders the working grid as a system-prompt preamble: every position
in descending bias order, then the task, then the processing
instruction. With no task argument the configured demo task is used.

Example:
  mandala prompt "Review this design for hidden assumptions"
  mandala --preset skeptic prompt "Is this benchmark honest?"`,
	RunE: runPrompt,
}

// exportCmd writes the working grid as a profile document
var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the working grid as a profile (JSON or YAML)",
	Long: `Writes the working grid in interchange form. With a path the format
follows the file extension; without one the document goes to stdout
in the --format encoding.

Example:
  mandala export team-grid.json
  mandala --preset mentor export mentor-copy.yaml
  mandala export --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runPrompt(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGrid()
	if err != nil {
		return err
	}

	task := strings.Join(args, " ")
	if task == "" {
		task = cfg.DemoTask
	}
	logger.Debug("rendering weighted prompt", zap.String("grid", g.Name), zap.String("task", task))

	fmt.Println(g.WeightedPrompt(task))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	g, _, err := resolveGrid()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := encodeAs(g, exportFormat)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	}

	path := args[0]
	if err := profile.Save(path, g); err != nil {
		return err
	}
	fmt.Printf("Exported grid to %s\n", path)
	return nil
}

func encodeAs(g *grid.Grid, format string) ([]byte, error) {
	switch format {
	case "", "json":
		return g.Encode()
	case "yaml", "yml":
		return g.EncodeYAML()
	}
	return nil, fmt.Errorf("unknown export format %q (json or yaml)", format)
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Stdout encoding: json or yaml (files follow their extension)")
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(exportCmd)
}
