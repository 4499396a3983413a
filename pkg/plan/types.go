// pkg/plan/types.go
package plan

// FortranLibrary is a static library compiled from one legacy source tree
type FortranLibrary struct {
	Name        string   `yaml:"name" json:"name" toml:"name"`
	Sources     []string `yaml:"sources" json:"sources" toml:"sources"`
	Libraries   []string `yaml:"libraries,omitempty" json:"libraries,omitempty" toml:"libraries,omitempty"`
	LibraryDirs []string `yaml:"library_dirs,omitempty" json:"library_dirs,omitempty" toml:"library_dirs,omitempty"`
}

// Extension is a compiled module linked against one or more libraries
type Extension struct {
	Name        string   `yaml:"name" json:"name" toml:"name"` // Dotted module name (e.g., "scipy.integrate._quadpack")
	Sources     []string `yaml:"sources" json:"sources" toml:"sources"`
	Libraries   []string `yaml:"libraries,omitempty" json:"libraries,omitempty" toml:"libraries,omitempty"`
	LibraryDirs []string `yaml:"library_dirs,omitempty" json:"library_dirs,omitempty" toml:"library_dirs,omitempty"`
}

// BuildConfig is the complete plan handed to the build orchestrator.
// It is built once by Generate and not modified afterwards.
type BuildConfig struct {
	Package          string           `yaml:"package" json:"package" toml:"package"`
	LocalPath        string           `yaml:"local_path" json:"local_path" toml:"local_path"`
	FortranLibraries []FortranLibrary `yaml:"fortran_libraries" json:"fortran_libraries" toml:"fortran_libraries"`
	Extensions       []Extension      `yaml:"ext_modules" json:"ext_modules" toml:"ext_modules"`
}

// FortranLibrary returns the library with the given name, or nil
func (c *BuildConfig) FortranLibrary(name string) *FortranLibrary {
	for i := range c.FortranLibraries {
		if c.FortranLibraries[i].Name == name {
			return &c.FortranLibraries[i]
		}
	}
	return nil
}

// Extension returns the extension whose dotted name ends with leaf, or nil
func (c *BuildConfig) Extension(leaf string) *Extension {
	for i := range c.Extensions {
		if lastPart(c.Extensions[i].Name) == leaf {
			return &c.Extensions[i]
		}
	}
	return nil
}

// Severity classifies a diagnostic
type Severity string

const (
	// SeverityWarning marks a degraded but recoverable resolution
	SeverityWarning Severity = "warning"
)

// Diagnostic is a non-fatal note produced while generating a plan
type Diagnostic struct {
	Severity   Severity `yaml:"severity" json:"severity"`
	Dependency string   `yaml:"dependency" json:"dependency"`
	Message    string   `yaml:"message" json:"message"`
}
