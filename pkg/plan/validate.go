// pkg/plan/validate.go
package plan

import "fmt"

// Validate checks that every library linked by an extension or required by a
// fortran library is either declared in cfg or listed in external.
func Validate(cfg *BuildConfig, external []string) error {
	known := make(map[string]bool, len(cfg.FortranLibraries)+len(external))
	for _, name := range external {
		known[name] = true
	}
	for _, lib := range cfg.FortranLibraries {
		if lib.Name == "" {
			return fmt.Errorf("fortran library with empty name")
		}
		if known[lib.Name] && !contains(external, lib.Name) {
			return fmt.Errorf("fortran library %q declared twice", lib.Name)
		}
		known[lib.Name] = true
	}

	for _, lib := range cfg.FortranLibraries {
		for _, dep := range lib.Libraries {
			if !known[dep] {
				return fmt.Errorf("%w: library %s depends on %s", ErrDanglingLibrary, lib.Name, dep)
			}
		}
	}
	for _, ext := range cfg.Extensions {
		for _, dep := range ext.Libraries {
			if !known[dep] {
				return fmt.Errorf("%w: extension %s links %s", ErrDanglingLibrary, ext.Name, dep)
			}
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
