// pkg/sysinfo/chain.go
package sysinfo

import "fmt"

// Chain asks each resolver in order and returns the first usable info.
// A failing resolver stops the lookup.
type Chain []Resolver

// GetInfo implements Resolver
func (c Chain) GetInfo(name string) (Info, error) {
	for i, r := range c {
		if r == nil {
			continue
		}
		info, err := r.GetInfo(name)
		if err != nil {
			return Info{}, fmt.Errorf("resolver %d: %w", i, err)
		}
		if usable(name, info) {
			return info, nil
		}
	}
	return Info{}, nil
}

// usable reports whether info answers a lookup for name. Bundled BLAS
// sources are only usable when they list source files.
func usable(name string, info Info) bool {
	if name == BlasSrc {
		return len(info.Sources) > 0
	}
	return !info.Empty()
}

// Disabled hides the named dependencies from the wrapped resolver
type Disabled struct {
	Resolver Resolver
	Names    []string
}

// GetInfo implements Resolver
func (d Disabled) GetInfo(name string) (Info, error) {
	for _, n := range d.Names {
		if n == name {
			return Info{}, nil
		}
	}
	if d.Resolver == nil {
		return Info{}, nil
	}
	return d.Resolver.GetInfo(name)
}
