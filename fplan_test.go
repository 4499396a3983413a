package fplan

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolatedConfig returns a config that never looks at the host's libraries
func isolatedConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv("ATLAS", "")
	t.Setenv("BLAS", "")
	t.Setenv("BLAS_SRC", "")

	cfg := DefaultConfig()
	cfg.CachePath = t.TempDir()
	cfg.RegistryPath = t.TempDir()
	cfg.LibraryDirs = []string{}
	cfg.BlasSrcDirs = []string{}
	return cfg
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
}

func TestPlannerUsesInlineDependencies(t *testing.T) {
	cfg := isolatedConfig(t)
	cfg.ParentPackage = "scipy"
	cfg.Dependencies[Atlas] = Info{LibraryDirs: []string{"/opt/atlas"}, Libraries: []string{"atlas"}}

	p := NewPlanner(cfg, nil)
	build, diags, err := p.Plan("", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Equal(t, "scipy.integrate", build.Package)
	assert.Equal(t, []string{"linpack_lite", "atlas"}, build.FortranLibrary("odepack").Libraries)
}

func TestPlannerRegistryAndDisabled(t *testing.T) {
	cfg := isolatedConfig(t)
	cfg.Dependencies[Atlas] = Info{Libraries: []string{"atlas"}}
	cfg.Disabled = []string{Atlas}
	writeFile(t, filepath.Join(cfg.RegistryPath, "blas", "index.toml"), `
libraries = ["openblas"]
library_dirs = ["/opt/openblas/lib"]
`)

	p := NewPlanner(cfg, nil)
	build, diags, err := p.Plan("scipy", t.TempDir())
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, Atlas, diags[0].Dependency)
	assert.Equal(t, []string{"/opt/openblas/lib"}, build.Extension("vode").LibraryDirs)
}

func TestPlannerBundledSources(t *testing.T) {
	cfg := isolatedConfig(t)
	srcDir := t.TempDir()
	writeFile(t, filepath.Join(srcDir, "daxpy.f"), "      END\n")
	cfg.BlasSrcDirs = []string{srcDir}

	p := NewPlanner(cfg, nil)
	build, diags, err := p.Plan("", t.TempDir())
	require.NoError(t, err)
	assert.Len(t, diags, 2)
	require.NotNil(t, build.FortranLibrary(BlasSrc))
	assert.Equal(t, []string{filepath.Join(srcDir, "daxpy.f")}, build.FortranLibrary(BlasSrc).Sources)
}

func TestPlannerNoBlas(t *testing.T) {
	p := NewPlanner(isolatedConfig(t), nil)
	build, diags, err := p.Plan("scipy", t.TempDir())
	require.Error(t, err)
	assert.Nil(t, build)
	assert.Len(t, diags, 2)
	assert.True(t, errors.Is(err, ErrBlasSrcNotFound))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "plan", e.Op)
	assert.Equal(t, "scipy.integrate", e.Package)
}

func TestPlannerInfo(t *testing.T) {
	cfg := isolatedConfig(t)
	cfg.Dependencies[Blas] = Info{Libraries: []string{"blas"}}
	p := NewPlanner(cfg, nil)

	info, err := p.Info(Blas)
	require.NoError(t, err)
	assert.Equal(t, []string{"blas"}, info.Libraries)

	info, err = p.Info(Atlas)
	require.NoError(t, err)
	assert.True(t, info.Empty())

	_, err = p.Info("")
	assert.ErrorIs(t, err, ErrInvalidDependency)
}

func TestPlannerWrite(t *testing.T) {
	cfg := isolatedConfig(t)
	cfg.Dependencies[Blas] = Info{Libraries: []string{"blas"}}
	p := NewPlanner(cfg, nil)

	build, _, err := p.Plan("scipy", t.TempDir())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.Write(&buf, build, FormatStarlark))
	assert.Contains(t, buf.String(), `name = "scipy.integrate._quadpack"`)

	err = p.Write(&buf, build, Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
