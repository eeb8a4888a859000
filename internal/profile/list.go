package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mandala/internal/grid"
)

// Entry is one profile file found by List. Unloadable files carry their
// error instead of a grid so a directory scan never aborts halfway.
type Entry struct {
	Path string
	Grid *grid.Grid
	Err  error
}

// List scans dir for profile files (.json, .yaml, .yml) and loads each
// one, sorted by filename. A missing directory is an empty list, not an
// error.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !isProfilePath(de.Name()) {
			continue
		}
		path := filepath.Join(dir, de.Name())
		g, err := Load(path)
		entries = append(entries, Entry{Path: path, Grid: g, Err: err})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
