// pkg/sysinfo/system.go
package sysinfo

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Library sets that make up each prebuilt dependency
var (
	atlasLibraries = []string{"f77blas", "cblas", "atlas"}
	blasLibraries  = []string{"blas"}
)

// blasSourceMarker is the file whose presence identifies a BLAS source tree
const blasSourceMarker = "daxpy.f"

// envDisabled is the environment value that turns a dependency off
const envDisabled = "None"

// System discovers dependencies installed on the host.
//
// The environment variables ATLAS, BLAS and BLAS_SRC hold extra search paths
// (os.PathListSeparator separated) that are tried before the configured ones.
// Setting one of them to "None" hides that dependency entirely.
type System struct {
	LibraryDirs []string // Library search path, in priority order
	SourceDirs  []string // BLAS source search path; entries may be .tar.xz archives
	CachePath   string   // Where source archives are unpacked

	goos   string
	getenv func(string) string
	logger *zap.Logger
}

// NewSystem creates a System resolver. Nil dir lists fall back to the platform defaults.
func NewSystem(libraryDirs, sourceDirs []string, cachePath string, logger *zap.Logger) *System {
	if libraryDirs == nil {
		libraryDirs = DefaultLibraryDirs()
	}
	if sourceDirs == nil {
		sourceDirs = DefaultSourceDirs()
	}
	if cachePath == "" {
		cachePath = filepath.Join(os.TempDir(), "fplan")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{
		LibraryDirs: libraryDirs,
		SourceDirs:  sourceDirs,
		CachePath:   cachePath,
		goos:        runtime.GOOS,
		getenv:      os.Getenv,
		logger:      logger,
	}
}

// GetInfo implements Resolver. Names other than atlas, blas and blas_src are
// never found on the host.
func (s *System) GetInfo(name string) (Info, error) {
	switch name {
	case Atlas:
		return s.findLibraries("ATLAS", atlasLibraries), nil
	case Blas:
		return s.findLibraries("BLAS", blasLibraries), nil
	case BlasSrc:
		return s.findSources("BLAS_SRC")
	default:
		return Info{}, nil
	}
}

// searchPath returns env-provided dirs followed by the configured ones.
// The second result is false when the dependency is disabled.
func (s *System) searchPath(envKey string, configured []string) ([]string, bool) {
	value := s.getenv(envKey)
	if value == envDisabled {
		return nil, false
	}
	var dirs []string
	for _, d := range filepath.SplitList(value) {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return append(dirs, configured...), true
}

// findLibraries returns the first directory holding every one of libs
func (s *System) findLibraries(envKey string, libs []string) Info {
	dirs, ok := s.searchPath(envKey, s.LibraryDirs)
	if !ok {
		s.logger.Debug("dependency disabled by environment", zap.String("env", envKey))
		return Info{}
	}

	for _, dir := range dirs {
		found := true
		for _, lib := range libs {
			if !s.hasLibrary(dir, lib) {
				found = false
				break
			}
		}
		if found {
			s.logger.Debug("found libraries",
				zap.Strings("libraries", libs),
				zap.String("dir", dir))
			return Info{
				LibraryDirs: []string{dir},
				Libraries:   append([]string(nil), libs...),
			}
		}
	}
	return Info{}
}

// hasLibrary checks dir for lib{name}{ext} or a versioned lib{name}{ext}.*
func (s *System) hasLibrary(dir, name string) bool {
	for _, ext := range libraryExtensions(s.goos) {
		filename := "lib" + name + ext
		if fileExists(filepath.Join(dir, filename)) {
			return true
		}
		matches, _ := filepath.Glob(filepath.Join(dir, filename+".*"))
		if len(matches) > 0 {
			return true
		}
	}
	return false
}

// findSources locates a BLAS source tree and lists its Fortran files
func (s *System) findSources(envKey string) (Info, error) {
	dirs, ok := s.searchPath(envKey, s.SourceDirs)
	if !ok {
		s.logger.Debug("dependency disabled by environment", zap.String("env", envKey))
		return Info{}, nil
	}

	for _, dir := range dirs {
		candidates := []string{dir, filepath.Join(dir, "blas")}

		if isArchive(dir) {
			if !fileExists(dir) {
				continue
			}
			root, err := s.unpack(dir)
			if err != nil {
				return Info{}, err
			}
			candidates = append([]string{root}, subdirs(root)...)
		}

		for _, c := range candidates {
			if !fileExists(filepath.Join(c, blasSourceMarker)) {
				continue
			}
			sources, err := filepath.Glob(filepath.Join(c, "*.f"))
			if err != nil {
				return Info{}, err
			}
			s.logger.Debug("found BLAS sources",
				zap.String("dir", c),
				zap.Int("files", len(sources)))
			return Info{Sources: sources}, nil
		}
	}
	return Info{}, nil
}

func subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out
}

func isArchive(path string) bool {
	return strings.HasSuffix(path, ".tar.xz") || strings.HasSuffix(path, ".txz")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
