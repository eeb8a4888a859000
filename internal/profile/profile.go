// Package profile stores mandala grids on disk and ships the built-in
// presets. A profile is a single-grid JSON or YAML document; the file
// extension picks the format, with JSON the default.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mandala/internal/grid"
)

// Load reads a grid profile from disk. Files ending in .yaml or .yml
// parse as YAML; everything else parses as JSON.
func Load(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	var g *grid.Grid
	if isYAMLPath(path) {
		g, err = grid.DecodeYAML(data)
	} else {
		g, err = grid.Decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return g, nil
}

// Save writes a grid profile, creating parent directories as needed.
// The extension picks the format the same way Load does.
func Save(path string, g *grid.Grid) error {
	var data []byte
	var err error
	if isYAMLPath(path) {
		data, err = g.EncodeYAML()
	} else {
		data, err = g.Encode()
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// isProfilePath reports whether path looks like a profile file the
// loader understands.
func isProfilePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
