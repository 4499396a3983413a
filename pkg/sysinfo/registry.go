// pkg/sysinfo/registry.go
package sysinfo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrEntryNotFound indicates the registry has no entry for a dependency
var ErrEntryNotFound = errors.New("registry entry not found")

// Entry represents a single <name>/index.toml file
type Entry struct {
	Name string `toml:"name"`
	Info
}

// Registry provides lookup into a directory of dependency descriptions.
//
// Layout:
//
//	<dir>/atlas/index.toml
//	<dir>/blas/index.toml
//	<dir>/blas_src/index.toml
type Registry struct {
	depsDir string
}

// NewRegistry creates a Registry rooted at dir
func NewRegistry(dir string) *Registry {
	return &Registry{depsDir: dir}
}

// GetInfo implements Resolver. A missing registry directory or entry is
// reported as an absent dependency, a malformed entry as an error.
func (r *Registry) GetInfo(name string) (Info, error) {
	entry, err := r.Load(name)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return Info{}, nil
		}
		return Info{}, err
	}
	return entry.Info, nil
}

// Load reads and parses <dir>/<name>/index.toml.
// Relative paths inside the entry are resolved against the entry's directory.
func (r *Registry) Load(name string) (*Entry, error) {
	if r.depsDir == "" {
		return nil, fmt.Errorf("registry: %w: no registry configured", ErrEntryNotFound)
	}

	path := filepath.Join(r.depsDir, name, "index.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("registry: %w: '%s'", ErrEntryNotFound, name)
		}
		return nil, fmt.Errorf("registry: reading '%s': %w", name, err)
	}

	var entry Entry
	if _, err := toml.Decode(string(data), &entry); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", name, err)
	}
	if entry.Name == "" {
		entry.Name = name
	}

	base := filepath.Dir(path)
	entry.LibraryDirs = absolutize(base, entry.LibraryDirs)
	entry.IncludeDirs = absolutize(base, entry.IncludeDirs)
	entry.Sources = absolutize(base, entry.Sources)

	return &entry, nil
}

func absolutize(base string, paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = p
		} else {
			out[i] = filepath.Join(base, p)
		}
	}
	return out
}
