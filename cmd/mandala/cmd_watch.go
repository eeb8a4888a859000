package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"mandala/internal/grid"
	"mandala/internal/profile"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch profiles and reload them on change",
	Long: `Watch a profile file or directory and reload on change. With no
argument the profile directory is watched and each changed profile is
reported with its signature; with a single file the full board re-renders
on every save. Edits are debounced, so an editor that writes the file
several times produces one reload.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dir := cfg.ProfileDir
	only := ""
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if info.IsDir() {
			dir = args[0]
		} else {
			dir = filepath.Dir(args[0])
			only = filepath.Clean(args[0])
		}
	}

	w, err := profile.NewWatcher(dir, func(path string, g *grid.Grid, err error) {
		if only != "" && filepath.Clean(path) != only {
			return
		}
		name := filepath.Base(path)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", name, err)
			return
		}
		if only != "" {
			fmt.Println(renderShow(g, ""))
			return
		}
		fmt.Printf("↻ %s reloaded: %s\n", name, g.Signature())
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	target := dir
	if only != "" {
		target = only
	}
	fmt.Printf("Watching %s for profile changes\n", target)
	fmt.Println("Press Ctrl+C to stop")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	w.Stop()

	stats := w.Stats()
	fmt.Printf("\nWatched: %d created, %d modified, %d removed, %d reloads, %d errors\n",
		stats.FilesCreated, stats.FilesModified, stats.FilesRemoved, stats.Reloads, stats.Errors)
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
