// pkg/emit/starlark.go
package emit

import (
	"github.com/bazelbuild/buildtools/build"

	"github.com/arc-language/fplan/pkg/plan"
)

// Rule names used in the generated BUILD file
const (
	FortranLibraryRule = "fortran_library"
	ExtensionRule      = "extension"
)

// Starlark renders cfg as a BUILD file: one fortran_library call per library
// followed by one extension call per module. List order is kept as given
// since it is the link order.
func Starlark(cfg *plan.BuildConfig) []byte {
	f := &build.File{Type: build.TypeBuild}

	for _, lib := range cfg.FortranLibraries {
		f.Stmt = append(f.Stmt, rule(FortranLibraryRule, lib.Name, lib.Sources, lib.Libraries, lib.LibraryDirs))
	}
	for _, ext := range cfg.Extensions {
		f.Stmt = append(f.Stmt, rule(ExtensionRule, ext.Name, ext.Sources, ext.Libraries, ext.LibraryDirs))
	}

	return build.FormatWithoutRewriting(f)
}

func rule(kind, name string, srcs, deps, libraryDirs []string) *build.CallExpr {
	call := &build.CallExpr{
		X: &build.Ident{Name: kind},
		List: []build.Expr{
			attr("name", &build.StringExpr{Value: name}),
			attr("srcs", stringList(srcs)),
		},
		ForceMultiLine: true,
	}
	if len(deps) > 0 {
		call.List = append(call.List, attr("deps", stringList(deps)))
	}
	if len(libraryDirs) > 0 {
		call.List = append(call.List, attr("library_dirs", stringList(libraryDirs)))
	}
	return call
}

func attr(name string, value build.Expr) *build.AssignExpr {
	return &build.AssignExpr{
		LHS: &build.Ident{Name: name},
		Op:  "=",
		RHS: value,
	}
}

func stringList(values []string) *build.ListExpr {
	list := &build.ListExpr{}
	for _, v := range values {
		list.List = append(list.List, &build.StringExpr{Value: v})
	}
	list.ForceMultiLine = len(values) > 1
	return list
}
