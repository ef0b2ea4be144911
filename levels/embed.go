package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.txt
var LevelsFS embed.FS

// StartMap is the map loaded when no other is requested.
const StartMap = "map.txt"

// Load parses a map by name. A file on disk wins over the embedded copy so
// maps can be edited without rebuilding. Names may carry an "assets/" or
// "levels/" prefix.
func Load(name string) (*Map, error) {
	data, err := read(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	m, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	m.Name = CleanName(name)
	return m, nil
}

func read(name string) ([]byte, error) {
	clean := CleanName(name)
	if clean == "" {
		return nil, fs.ErrNotExist
	}
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// CleanName reduces a map reference to its name inside the levels dir.
func CleanName(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	for _, prefix := range []string{"assets/", "levels/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			s = after
		}
	}
	if path.Ext(s) == "" {
		s += ".txt"
	}
	return s
}

// DiskPath is where an editable copy of the named map lives.
func DiskPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
