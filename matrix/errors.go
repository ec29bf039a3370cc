// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.
// Public methods wrap these with the method tag and coordinates (denseErrorf).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the matrix.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates a vector whose length does not match the
	// matrix dimension it is applied to (SetColumn, AppendColumn, NewDenseFrom).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrZeroPivot is returned by Pivot when the chosen entry is exactly zero.
	ErrZeroPivot = errors.New("matrix: zero pivot")
)
