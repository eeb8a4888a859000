package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mandala/internal/grid"
	"mandala/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List built-in presets and saved profiles",
	Long:  `List the built-in presets and every profile found in the profile directory, with the personality signature of each grid that loads cleanly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Built-in presets:")
		for _, name := range profile.Presets() {
			g, err := profile.Preset(name)
			if err != nil {
				logger.Warn("failed to load preset", zap.String("preset", name), zap.Error(err))
				continue
			}
			fmt.Printf("  %-14s %s\n", name, g.Description)
		}

		entries, err := profile.List(cfg.ProfileDir)
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}

		fmt.Printf("\nProfiles in %s:\n", cfg.ProfileDir)
		if len(entries) == 0 {
			fmt.Println("  (none)")
			return nil
		}
		for _, entry := range entries {
			name := filepath.Base(entry.Path)
			if entry.Err != nil {
				fmt.Printf("  %-14s ✗ %v\n", name, entry.Err)
				continue
			}
			fmt.Printf("  %-14s %s\n", name, entry.Grid.Signature())
		}
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>...",
	Short: "Validate profile files",
	Long: `Load each profile file and report whether it parses as a mandala grid,
along with advisory warnings for unusual bias weights or missing
positions. Warnings do not fail the command; files that do not parse do.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			g, err := profile.Load(path)
			if err != nil {
				fmt.Printf("✗ %s: %v\n", path, err)
				failed++
				continue
			}
			fmt.Print(renderValidation(path, g))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(args))
		}
		return nil
	},
}

func renderValidation(path string, g *grid.Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ %s: %s (v%s, %d positions)\n", path, g.Name, g.Version, len(g.Positions))
	for _, warning := range g.Warnings() {
		fmt.Fprintf(&b, "  ⚠ %s\n", warning)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(validateCmd)
}
