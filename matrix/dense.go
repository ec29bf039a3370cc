// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/prodrate/rational"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAddAt  = "AddAt"
	ctxRow    = "Row"
	ctxMulRow = "MulRow"
	ctxSwap   = "SwapRows"
	ctxZeroR  = "ZeroRow"
	ctxZeroC  = "ZeroColumn"
	ctxMulPos = "MulPosColumn"
	ctxSetCol = "SetColumn"
	ctxAddRow = "AddRowMultiple"
	ctxPivot  = "Pivot"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of exact rationals.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []rational.Rational
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// The zero Rational is 0, so make() already holds a zero matrix.
	return &Dense{r: rows, c: cols, data: make([]rational.Rational, rows*cols)}, nil
}

// NewDenseFrom builds a matrix from a rectangular slice of rows (copied).
//
// Errors:
//   - ErrInvalidDimensions for an empty input or an empty first row.
//   - ErrDimensionMismatch when rows have different lengths.
func NewDenseFrom(rows [][]rational.Rational) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFrom: %w", ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d entries, want %d: %w", i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf validates (i,j) and returns the flat offset.
func (m *Dense) indexOf(method string, i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(method, i, j, ErrIndexOutOfBounds)
	}

	return i*m.c + j, nil
}

// checkRow validates a row index.
func (m *Dense) checkRow(method string, i int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(method, i, 0, ErrIndexOutOfBounds)
	}

	return nil
}

// checkCol validates a column index.
func (m *Dense) checkCol(method string, j int) error {
	if j < 0 || j >= m.c {
		return denseErrorf(method, 0, j, ErrIndexOutOfBounds)
	}

	return nil
}

// At returns the element at (i,j).
func (m *Dense) At(i, j int) (rational.Rational, error) {
	off, err := m.indexOf(ctxAt, i, j)
	if err != nil {
		return rational.Zero, err
	}

	return m.data[off], nil
}

// Set assigns v at (i,j).
func (m *Dense) Set(i, j int, v rational.Rational) error {
	off, err := m.indexOf(ctxSet, i, j)
	if err != nil {
		return err
	}
	m.data[off] = v

	return nil
}

// AddAt adds v to the element at (i,j).
func (m *Dense) AddAt(i, j int, v rational.Rational) error {
	off, err := m.indexOf(ctxAddAt, i, j)
	if err != nil {
		return err
	}
	m.data[off] = m.data[off].Add(v)

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]rational.Rational, error) {
	if err := m.checkRow(ctxRow, i); err != nil {
		return nil, err
	}
	out := make([]rational.Rational, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy. Rational values are immutable, so copying the
// slice is enough to make the two matrices independent.
func (m *Dense) Clone() *Dense {
	data := make([]rational.Rational, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and exactly equal entries.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if !m.data[k].Equal(o.data[k]) {
			return false
		}
	}

	return true
}

// String renders the matrix one bracketed row per line, e.g. "[1, 1/2]\n[0, 3]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
