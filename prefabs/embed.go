package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// DiskDir is checked before the embedded copy so edited prefabs win.
var DiskDir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// List returns the names of every embedded and on-disk prefab.
func List() ([]string, error) {
	seen := map[string]bool{}
	embedded, err := fs.Glob(PrefabsFS, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list embedded: %w", err)
	}
	for _, name := range embedded {
		seen[name] = true
	}
	if onDisk, err := filepath.Glob(filepath.Join(DiskDir, "*.yaml")); err == nil {
		for _, path := range onDisk {
			seen[filepath.Base(path)] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Name strips directories so disk events and prefab references compare
// equal.
func Name(path string) string {
	return cleanPrefabPath(filepath.Base(filepath.ToSlash(path)))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
