// Package main implements the mandala CLI: a 3×3 weighted personality
// grid for AI agents, mapped onto the Eight Consciousnesses of Yogācāra
// Buddhism. The grid renders as a board, a signature, or a weighted
// system prompt, and profiles hot-reload while you tune them.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mandala/internal/config"
	"mandala/internal/grid"
	"mandala/internal/profile"
)

var (
	// Global flags
	verbose     bool
	profilePath string
	presetName  string
	configPath  string

	// Loaded configuration
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mandala",
	Short: "mandala - weighted personality grids for AI agents",
	Long: `mandala maintains 3×3 personality grids: nine weighted cognitive
positions mapped onto the Eight Consciousnesses (八識) of Yogācāra
Buddhism, with one position beyond them for lineage.

A grid is not a memory store; it parameterizes how an agent reasons.
Feed it a task and it renders a weighted system prompt; tune it and
your agent's personality shifts with it.

Run without arguments to display the working grid.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The editor owns the terminal; route its logs nowhere.
		if cmd.Name() == "edit" {
			logger = zap.NewNop()
		} else {
			zapCfg := zap.NewProductionConfig()
			if verbose {
				zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zapCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}

		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger.Debug("config loaded",
			zap.String("path", path),
			zap.String("profile_dir", cfg.ProfileDir),
			zap.String("default_profile", cfg.DefaultProfile))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runShow,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "Path to a grid profile (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "Built-in grid to load (see 'mandala profiles')")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.mandala/config.yaml)")

	rootCmd.Flags().BoolVar(&showDemo, "demo", false, "Append a weighted-prompt demo to the view")
}

// resolveGrid loads the working grid: --profile beats --preset beats
// the configured default profile, and with nothing set the built-in
// grid wins. The returned path is empty unless the grid came from a
// file, in which case edits can be saved back to it.
func resolveGrid() (*grid.Grid, string, error) {
	switch {
	case profilePath != "":
		g, err := profile.Load(profilePath)
		if err != nil {
			return nil, "", err
		}
		return g, profilePath, nil
	case presetName != "":
		g, err := profile.Preset(presetName)
		if err != nil {
			return nil, "", err
		}
		return g, "", nil
	case cfg != nil && cfg.DefaultProfile != "":
		return loadRef(cfg.DefaultProfile)
	}
	return grid.Default(), "", nil
}

// loadRef resolves a grid reference the lenient way: preset name first,
// then a path on disk.
func loadRef(ref string) (*grid.Grid, string, error) {
	g, err := profile.Preset(ref)
	if err == nil {
		return g, "", nil
	}
	if !errors.Is(err, profile.ErrUnknownPreset) {
		return nil, "", err
	}
	g, err = profile.Load(ref)
	if err != nil {
		return nil, "", err
	}
	return g, ref, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
