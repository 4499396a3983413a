package emit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/bazelbuild/buildtools/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/fplan/pkg/plan"
)

func samplePlan() *plan.BuildConfig {
	return &plan.BuildConfig{
		Package:   "scipy.integrate",
		LocalPath: "/src/integrate",
		FortranLibraries: []plan.FortranLibrary{
			{Name: "odepack", Sources: []string{"/src/integrate/odepack/lsoda.f"}, Libraries: []string{"linpack_lite", "f77blas", "cblas", "atlas"}, LibraryDirs: []string{"/usr/lib"}},
			{Name: "linpack_lite", Sources: []string{"/src/integrate/linpack_lite/dgesl.f", "/src/integrate/linpack_lite/dgefa.f"}},
		},
		Extensions: []plan.Extension{
			{Name: "scipy.integrate.vode", Sources: []string{"/src/integrate/vode.pyf"}, Libraries: []string{"odepack"}, LibraryDirs: []string{"/usr/lib"}},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatYAML},
		{"YML", FormatYAML},
		{"json", FormatJSON},
		{"toml", FormatTOML},
		{"bzl", FormatStarlark},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePlan(), FormatYAML))

	var decoded plan.BuildConfig
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *samplePlan(), decoded)
	assert.Contains(t, buf.String(), "ext_modules:")
	assert.Contains(t, buf.String(), "fortran_libraries:")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePlan(), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "scipy.integrate", decoded["package"])
	assert.Len(t, decoded["fortran_libraries"], 2)
	assert.Len(t, decoded["ext_modules"], 1)
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePlan(), FormatTOML))

	var decoded plan.BuildConfig
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, *samplePlan(), decoded)
}

func TestWriteStarlark(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePlan(), FormatStarlark))

	f, err := build.ParseBuild("BUILD", buf.Bytes())
	require.NoError(t, err)

	rules := f.Rules("")
	require.Len(t, rules, 3)

	assert.Equal(t, FortranLibraryRule, rules[0].Kind())
	assert.Equal(t, "odepack", rules[0].Name())
	assert.Equal(t, []string{"linpack_lite", "f77blas", "cblas", "atlas"}, rules[0].AttrStrings("deps"))
	assert.Equal(t, []string{"/usr/lib"}, rules[0].AttrStrings("library_dirs"))

	assert.Equal(t, "linpack_lite", rules[1].Name())
	assert.Nil(t, rules[1].Attr("deps"))
	assert.Equal(t, []string{
		"/src/integrate/linpack_lite/dgesl.f",
		"/src/integrate/linpack_lite/dgefa.f",
	}, rules[1].AttrStrings("srcs"))

	assert.Equal(t, ExtensionRule, rules[2].Kind())
	assert.Equal(t, "scipy.integrate.vode", rules[2].Name())
}

func TestWriteRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, nil, FormatYAML))
	assert.ErrorIs(t, Write(&buf, samplePlan(), Format("xml")), ErrUnknownFormat)
}
