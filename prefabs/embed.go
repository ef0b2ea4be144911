package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FS holds the shipped yaml specs and combat scripts.
//
//go:embed *.yaml scripts/*.tengo
var FS embed.FS

// Load returns a yaml spec by name. A copy under prefabs/ on disk wins so
// tuning can be edited without a rebuild.
func Load(name string) ([]byte, error) {
	return read(relName(name))
}

// LoadScript returns a combat script by name. Names may carry a
// "prefabs/" or "scripts/" prefix.
func LoadScript(name string) ([]byte, error) {
	rel := relName(name)
	if rel == "" {
		return nil, fs.ErrNotExist
	}
	return read(path.Join("scripts", strings.TrimPrefix(rel, "scripts/")))
}

func read(rel string) ([]byte, error) {
	if rel == "" {
		return nil, fs.ErrNotExist
	}
	if data, err := os.ReadFile(filepath.Join("prefabs", filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return FS.ReadFile(rel)
}

// relName strips a leading "prefabs/" so names resolve inside FS.
func relName(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), "prefabs/")
}
