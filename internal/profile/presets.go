package profile

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"mandala/internal/grid"
)

// ErrUnknownPreset indicates a preset name with no built-in grid.
var ErrUnknownPreset = errors.New("unknown preset")

// embeddedPresets bakes the alternate preset profiles into the binary.
// quan-default is not a file here; it comes straight from grid.Default
// so the canonical table has exactly one source.
//
//go:embed presets
var embeddedPresets embed.FS

// Preset returns a fresh copy of a built-in grid by name.
func Preset(name string) (*grid.Grid, error) {
	if name == grid.DefaultName {
		return grid.Default(), nil
	}
	data, err := embeddedPresets.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	g, err := grid.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded preset %s: %w", name, err)
	}
	return g, nil
}

// Presets returns the sorted names of all built-in grids.
func Presets() []string {
	names := []string{grid.DefaultName}
	entries, err := fs.ReadDir(embeddedPresets, "presets")
	if err != nil {
		return names
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}
