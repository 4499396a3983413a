package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      BuildConfig
		external []string
		wantErr  error
		errText  string
	}{
		{
			name: "resolved internally and externally",
			cfg: BuildConfig{
				FortranLibraries: []FortranLibrary{
					{Name: "odepack", Libraries: []string{"linpack_lite", "blas"}},
					{Name: "linpack_lite"},
				},
				Extensions: []Extension{{Name: "x.vode", Libraries: []string{"odepack"}}},
			},
			external: []string{"blas"},
		},
		{
			name: "extension links unknown library",
			cfg: BuildConfig{
				Extensions: []Extension{{Name: "x._quadpack", Libraries: []string{"quadpack"}}},
			},
			wantErr: ErrDanglingLibrary,
		},
		{
			name: "library depends on unknown library",
			cfg: BuildConfig{
				FortranLibraries: []FortranLibrary{{Name: "odepack", Libraries: []string{"lapack"}}},
			},
			wantErr: ErrDanglingLibrary,
		},
		{
			name: "duplicate library",
			cfg: BuildConfig{
				FortranLibraries: []FortranLibrary{{Name: "mach"}, {Name: "mach"}},
			},
			errText: "declared twice",
		},
		{
			name: "external library may also be declared",
			cfg: BuildConfig{
				FortranLibraries: []FortranLibrary{{Name: "blas_src"}, {Name: "odepack", Libraries: []string{"blas_src"}}},
			},
			external: []string{"blas_src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg, tt.external)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
