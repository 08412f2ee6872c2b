package model

import "github.com/pkg/errors"

var (
	// ErrMismatchedRecordCount is returned by Fit when X and Y differ in rows.
	ErrMismatchedRecordCount = errors.New("model: data matrices have mismatched record count")
	// ErrNonBinaryLabel is returned by Fit when Y holds a value other than 0 or 1.
	ErrNonBinaryLabel = errors.New("model: non-binary value found in y")
	// ErrMismatchedFeatureCount is returned by Predict when the query width
	// differs from the fitted feature count.
	ErrMismatchedFeatureCount = errors.New("model: data matrix has mismatched feature count")
	// ErrShapeMismatch is returned by metrics given inputs of different shapes.
	ErrShapeMismatch = errors.New("model: shape mismatch")
)
