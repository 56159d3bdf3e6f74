package mapscanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MapEntry represents a discoverable level in the maps directory
type MapEntry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the level file
}

// ScanMapDirectory lists the level files in dir, sorted by name
func ScanMapDirectory(dir string) ([]MapEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	var maps []MapEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".json") {
			continue
		}

		maps = append(maps, MapEntry{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(maps, func(i, j int) bool { return maps[i].Name < maps[j].Name })
	return maps, nil
}

// Find returns the entry with the given name
func Find(maps []MapEntry, name string) (MapEntry, bool) {
	for _, m := range maps {
		if m.Name == name {
			return m, true
		}
	}
	return MapEntry{}, false
}
