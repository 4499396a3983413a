// pkg/sysinfo/types.go
package sysinfo

// Dependency names understood by the resolvers.
const (
	Atlas   = "atlas"
	Blas    = "blas"
	BlasSrc = "blas_src"
)

// Info describes where a native dependency lives.
// The zero value means the dependency was not found.
type Info struct {
	LibraryDirs []string `toml:"library_dirs" yaml:"library_dirs,omitempty" json:"library_dirs,omitempty"`
	Libraries   []string `toml:"libraries" yaml:"libraries,omitempty" json:"libraries,omitempty"`
	Sources     []string `toml:"sources" yaml:"sources,omitempty" json:"sources,omitempty"`
	IncludeDirs []string `toml:"include_dirs" yaml:"include_dirs,omitempty" json:"include_dirs,omitempty"`
}

// Empty reports whether the info carries nothing usable.
func (i Info) Empty() bool {
	return len(i.LibraryDirs) == 0 && len(i.Libraries) == 0 &&
		len(i.Sources) == 0 && len(i.IncludeDirs) == 0
}

// Resolver looks up dependency info by name.
// An empty Info with a nil error means the dependency is absent;
// a non-nil error means the lookup itself failed.
type Resolver interface {
	GetInfo(name string) (Info, error)
}

// Static serves infos from an in-memory table
type Static map[string]Info

// GetInfo implements Resolver
func (s Static) GetInfo(name string) (Info, error) {
	return s[name], nil
}
