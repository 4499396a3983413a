// fplan.go
package fplan

import (
	"io"

	"go.uber.org/zap"

	"github.com/arc-language/fplan/pkg/core"
	"github.com/arc-language/fplan/pkg/emit"
	"github.com/arc-language/fplan/pkg/plan"
	"github.com/arc-language/fplan/pkg/sysinfo"
)

// Re-export types for convenience
type (
	Config         = core.Config
	BuildConfig    = plan.BuildConfig
	FortranLibrary = plan.FortranLibrary
	Extension      = plan.Extension
	Diagnostic     = plan.Diagnostic
	Info           = sysinfo.Info
	Resolver       = sysinfo.Resolver
	Format         = emit.Format
)

// Re-export dependency names and formats
const (
	Atlas   = sysinfo.Atlas
	Blas    = sysinfo.Blas
	BlasSrc = sysinfo.BlasSrc

	FormatYAML     = emit.FormatYAML
	FormatJSON     = emit.FormatJSON
	FormatTOML     = emit.FormatTOML
	FormatStarlark = emit.FormatStarlark
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Planner generates build plans against one dependency resolver
type Planner struct {
	config   *Config
	resolver sysinfo.Resolver
	logger   *zap.Logger
}

// NewPlanner creates a Planner. Lookups go, in order, through the inline
// dependencies of config, the TOML registry and the host system; names in
// config.Disabled are never found.
func NewPlanner(config *Config, logger *zap.Logger) *Planner {
	if config == nil {
		config = core.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	chain := sysinfo.Chain{
		sysinfo.Static(config.Dependencies),
		sysinfo.NewRegistry(config.RegistryPath),
		sysinfo.NewSystem(config.LibraryDirs, config.BlasSrcDirs, config.CachePath, logger),
	}

	return NewPlannerWithResolver(config, sysinfo.Disabled{Resolver: chain, Names: config.Disabled}, logger)
}

// NewPlannerWithResolver creates a Planner using r for every dependency lookup
func NewPlannerWithResolver(config *Config, r sysinfo.Resolver, logger *zap.Logger) *Planner {
	if config == nil {
		config = core.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{config: config, resolver: r, logger: logger}
}

// Plan generates the build plan for the sources under parentPath.
// An empty parentPackage falls back to the configured one.
func (p *Planner) Plan(parentPackage, parentPath string) (*BuildConfig, []Diagnostic, error) {
	if parentPackage == "" {
		parentPackage = p.config.ParentPackage
	}

	cfg, diags, err := plan.Generate(plan.Options{
		ParentPackage: parentPackage,
		ParentPath:    parentPath,
		Resolver:      p.resolver,
		Logger:        p.logger,
	})
	if err != nil {
		return nil, diags, &Error{Op: "plan", Package: plan.DotJoin(parentPackage, plan.PackageName), Err: err}
	}
	return cfg, diags, nil
}

// Info resolves a single dependency
func (p *Planner) Info(name string) (Info, error) {
	if name == "" {
		return Info{}, &Error{Op: "info", Err: ErrInvalidDependency}
	}
	info, err := p.resolver.GetInfo(name)
	if err != nil {
		return Info{}, &Error{Op: "info", Package: name, Err: err}
	}
	return info, nil
}

// Write emits cfg in the given format
func (p *Planner) Write(w io.Writer, cfg *BuildConfig, format Format) error {
	if err := emit.Write(w, cfg, format); err != nil {
		return &Error{Op: "write", Err: err}
	}
	return nil
}
