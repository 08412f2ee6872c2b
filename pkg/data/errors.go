package data

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIO classifies failures to open or read a matrix source.
	ErrIO = errors.New("data: io failure")
	// ErrRaggedMatrix is returned when a row's cell count differs from the first row's.
	ErrRaggedMatrix = errors.New("data: matrix size is not uniform")
)

// InvalidCellError reports a token that could not be parsed as the requested
// element type. Row and Col are zero-based.
type InvalidCellError struct {
	Token    string
	Row, Col int
	Err      error
}

func (e *InvalidCellError) Error() string {
	return fmt.Sprintf("data: could not parse cell with value %q at row %d, column %d", e.Token, e.Row, e.Col)
}

func (e *InvalidCellError) Unwrap() error { return e.Err }

// IOError wraps an error from the underlying file or reader. It matches ErrIO
// under errors.Is.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return "data: " + e.Err.Error()
	}
	return fmt.Sprintf("data: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
