// pkg/plan/integrate.go
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/arc-language/fplan/pkg/sysinfo"
)

// PackageName is the subpackage this plan builds
const PackageName = "integrate"

// Legacy Fortran source trees, in registration order
const (
	Quadpack    = "quadpack"
	Odepack     = "odepack"
	LinpackLite = "linpack_lite"
	Mach        = "mach"
)

// Options configures Generate
type Options struct {
	ParentPackage string           // Dotted parent package (e.g., "scipy"); may be empty
	ParentPath    string           // Directory holding the source trees; defaults to the working directory
	Resolver      sysinfo.Resolver // Dependency lookup for atlas, blas and blas_src
	Logger        *zap.Logger
}

// Generate builds the plan for the integrate subpackage.
//
// ATLAS is preferred, then a prebuilt BLAS, then bundled BLAS sources. Each
// fallback adds a warning diagnostic; when all three are missing Generate
// fails with ErrBlasSrcNotFound and returns no config.
func Generate(opts Options) (*BuildConfig, []Diagnostic, error) {
	if opts.Resolver == nil {
		return nil, nil, ErrNoResolver
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	localPath := opts.ParentPath
	if localPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving parent path: %w", err)
		}
		localPath = wd
	}

	cfg := &BuildConfig{
		Package:   DotJoin(opts.ParentPackage, PackageName),
		LocalPath: localPath,
	}

	blas, fLibs, diags, err := resolveBlas(opts.Resolver, logger)
	if err != nil {
		return nil, diags, err
	}
	blasLibraryDirs := blas.LibraryDirs
	blasLibraries := blas.Libraries

	trees := []struct {
		name        string
		libraries   []string
		libraryDirs []string
	}{
		{Quadpack, []string{LinpackLite, Mach}, nil},
		{Odepack, concat([]string{LinpackLite}, blasLibraries), blasLibraryDirs},
		{LinpackLite, nil, nil},
		{Mach, nil, nil},
	}
	for _, tree := range trees {
		sources, err := fortranSources(filepath.Join(localPath, tree.name))
		if err != nil {
			return nil, diags, fmt.Errorf("listing %s sources: %w", tree.name, err)
		}
		logger.Debug("registered fortran library",
			zap.String("name", tree.name),
			zap.Int("sources", len(sources)))
		fLibs = append(fLibs, FortranLibrary{
			Name:        tree.name,
			Sources:     sources,
			Libraries:   tree.libraries,
			LibraryDirs: copyStrings(tree.libraryDirs),
		})
	}

	cfg.Extensions = []Extension{
		{
			Name:      DotJoin(opts.ParentPackage, PackageName, "_quadpack"),
			Sources:   []string{filepath.Join(localPath, "_quadpackmodule.c")},
			Libraries: []string{Quadpack},
		},
		{
			Name:      DotJoin(opts.ParentPackage, PackageName, "_odepack"),
			Sources:   []string{filepath.Join(localPath, "_odepackmodule.c")},
			Libraries: []string{Odepack, Mach},
		},
		{
			// vode is wrapped from an interface definition, not C
			Name:        DotJoin(opts.ParentPackage, PackageName, "vode"),
			Sources:     []string{filepath.Join(localPath, "vode.pyf")},
			Libraries:   []string{Odepack},
			LibraryDirs: copyStrings(blasLibraryDirs),
		},
	}
	cfg.FortranLibraries = fLibs

	if err := Validate(cfg, blasLibraries); err != nil {
		return nil, diags, err
	}
	return cfg, diags, nil
}

// resolveBlas walks the atlas, blas, blas_src fallback tiers. It returns the
// effective library info and, when bundled sources are used, the blas_src
// library that compiles them.
func resolveBlas(r sysinfo.Resolver, logger *zap.Logger) (sysinfo.Info, []FortranLibrary, []Diagnostic, error) {
	var diags []Diagnostic

	atlas, err := r.GetInfo(sysinfo.Atlas)
	if err != nil {
		return sysinfo.Info{}, nil, nil, fmt.Errorf("resolving %s: %w", sysinfo.Atlas, err)
	}
	if !atlas.Empty() {
		logger.Debug("using atlas", zap.Strings("libraries", atlas.Libraries))
		return atlas, nil, nil, nil
	}
	diags = append(diags, warn(sysinfo.Atlas, atlasNotFoundMessage, logger))

	blas, err := r.GetInfo(sysinfo.Blas)
	if err != nil {
		return sysinfo.Info{}, nil, diags, fmt.Errorf("resolving %s: %w", sysinfo.Blas, err)
	}
	if !blas.Empty() {
		logger.Debug("using blas", zap.Strings("libraries", blas.Libraries))
		return blas, nil, diags, nil
	}
	diags = append(diags, warn(sysinfo.Blas, blasNotFoundMessage, logger))

	src, err := r.GetInfo(sysinfo.BlasSrc)
	if err != nil {
		return sysinfo.Info{}, nil, diags, fmt.Errorf("resolving %s: %w", sysinfo.BlasSrc, err)
	}
	if len(src.Sources) == 0 {
		return sysinfo.Info{}, nil, diags, ErrBlasSrcNotFound
	}
	logger.Debug("building bundled blas sources", zap.Int("sources", len(src.Sources)))

	lib := FortranLibrary{
		Name:    sysinfo.BlasSrc,
		Sources: copyStrings(src.Sources),
	}
	return sysinfo.Info{Libraries: []string{sysinfo.BlasSrc}}, []FortranLibrary{lib}, diags, nil
}

func warn(dep, msg string, logger *zap.Logger) Diagnostic {
	logger.Debug("dependency not found", zap.String("dependency", dep))
	return Diagnostic{Severity: SeverityWarning, Dependency: dep, Message: msg}
}

// fortranSources lists the *.f files directly inside dir, in the order the
// filesystem returns them. A missing directory yields no sources.
func fortranSources(dir string) ([]string, error) {
	names, err := listDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	sources := []string{}
	for _, name := range names {
		if filepath.Ext(name) != ".f" {
			continue
		}
		path := filepath.Join(dir, name)
		if fi, err := os.Stat(path); err != nil || fi.IsDir() {
			continue
		}
		sources = append(sources, path)
	}
	return sources, nil
}

// listDir returns the entry names of dir without sorting them
func listDir(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}

// DotJoin joins the non-empty parts of a dotted module name
func DotJoin(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}

func lastPart(dotted string) string {
	if i := strings.LastIndex(dotted, "."); i >= 0 {
		return dotted[i+1:]
	}
	return dotted
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func copyStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return append([]string(nil), s...)
}
