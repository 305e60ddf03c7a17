package internal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel error kinds. Errors returned by this package wrap one of these, so
// callers can test with errors.Is.
var (
	// A point ended up strictly inside the circumcircle of a finished triangle.
	ErrInvariantViolation = errors.New("delaunay invariant violated")
	// Duplicate or collinear input that has no well defined triangulation.
	ErrDegenerateInput = errors.New("degenerate input")
)

// Threading errors through every step of cavity repair would clutter the
// algorithm. Deep assertions panic with a triangulateError instead, and the
// public entry points recover and convert it back into an ordinary error.
type triangulateError struct {
	err error
}

// Panic with an error wrapping kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(triangulateError{errors.Wrapf(kind, format, args...)})
}

// Convert a recovered triangulateError into an error. Any other panic is
// re-raised, since it is a genuine bug.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if te, ok := r.(triangulateError); ok {
			return te.err
		}
		panic(r)
	}
	return nil
}

// Returned by Triangulate when the finished mesh fails validation. It unwraps
// to ErrInvariantViolation.
type InvariantError struct {
	Violations []Violation
}

func (e *InvariantError) Error() string {
	var parts []string
	for i, v := range e.Violations {
		if i == 3 {
			parts = append(parts, fmt.Sprintf("and %d more", len(e.Violations)-i))
			break
		}
		parts = append(parts, v.String())
	}
	return fmt.Sprintf("%v: %s", ErrInvariantViolation, strings.Join(parts, "; "))
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
