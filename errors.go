// errors.go
package fplan

import (
	"errors"
	"fmt"

	"github.com/arc-language/fplan/pkg/emit"
	"github.com/arc-language/fplan/pkg/plan"
)

var (
	// ErrBlasSrcNotFound indicates no ATLAS, BLAS or BLAS source tree was found
	ErrBlasSrcNotFound = plan.ErrBlasSrcNotFound

	// ErrDanglingLibrary indicates the plan links a library nothing provides
	ErrDanglingLibrary = plan.ErrDanglingLibrary

	// ErrUnknownFormat indicates an unsupported output format
	ErrUnknownFormat = emit.ErrUnknownFormat

	// ErrInvalidDependency indicates an empty or malformed dependency name
	ErrInvalidDependency = errors.New("invalid dependency")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package or dependency name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
