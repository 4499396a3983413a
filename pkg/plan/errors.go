// pkg/plan/errors.go
package plan

import "errors"

var (
	// ErrBlasSrcNotFound indicates no BLAS implementation is available in any form
	ErrBlasSrcNotFound = errors.New(blasSrcNotFoundMessage)

	// ErrDanglingLibrary indicates a link against a library nothing provides
	ErrDanglingLibrary = errors.New("dangling library reference")

	// ErrNoResolver indicates Generate was called without a dependency resolver
	ErrNoResolver = errors.New("no dependency resolver")
)

const (
	atlasNotFoundMessage = "Atlas (http://math-atlas.sourceforge.net/) libraries not found. " +
		"Directories to search for the libraries can be specified in the fplan config file " +
		"(library_dirs or dependencies.atlas) or by setting the ATLAS environment variable."

	blasNotFoundMessage = "Blas (http://www.netlib.org/blas/) libraries not found. " +
		"Directories to search for the libraries can be specified in the fplan config file " +
		"(library_dirs or dependencies.blas) or by setting the BLAS environment variable."

	blasSrcNotFoundMessage = "Blas (http://www.netlib.org/blas/) sources not found. " +
		"Directories to search for the sources can be specified in the fplan config file " +
		"(blas_src_dirs or dependencies.blas_src) or by setting the BLAS_SRC environment variable."
)
