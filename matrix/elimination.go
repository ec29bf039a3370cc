// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/prodrate/rational"
)

// Pivot performs one Gauss-Jordan step on entry (row, col): the row is
// divided by the pivot so the entry becomes 1, then the column is eliminated
// from every other row (including the last one, which the simplex engine uses
// as its cost row).
//
// Errors:
//   - ErrIndexOutOfBounds for an invalid (row, col).
//   - ErrZeroPivot when the entry is exactly zero; the matrix is left unchanged.
//
// Complexity:
//   - Time O(r*c) rational operations.
func (m *Dense) Pivot(row, col int) error {
	off, err := m.indexOf(ctxPivot, row, col)
	if err != nil {
		return err
	}
	x := m.data[off]
	if x.IsZero() {
		return denseErrorf(ctxPivot, row, col, ErrZeroPivot)
	}
	m.pivot(row, col, x)

	return nil
}

// pivot is the unchecked body of Pivot; x must be the nonzero entry at (row, col).
func (m *Dense) pivot(row, col int, x rational.Rational) {
	// Stage 1: normalize the pivot row.
	inv, _ := x.Reciprocal() // x != 0 checked by callers
	pr := m.data[row*m.c : (row+1)*m.c]
	for j := range pr {
		pr[j] = pr[j].Mul(inv)
	}

	// Stage 2: eliminate the pivot column from every other row.
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		ratio := m.data[i*m.c+col]
		if ratio.IsZero() {
			continue
		}
		m.addRowMultiple(i, row, ratio.Neg())
	}
}

// RREF transforms the matrix in place into reduced row echelon form and
// returns the pivot column of each nonzero row, in row order.
//
// Implementation:
//   - Stage 1: scan columns left to right; for each, take the first row at or
//     below the current pivot row with a nonzero entry.
//   - Stage 2: swap it into place and pivot (normalize + eliminate above and below).
//
// Behavior highlights:
//   - Exact: no tolerance, a zero is exactly zero.
//   - Idempotent: RREF of a matrix already in RREF returns the same pivots and
//     leaves the matrix unchanged.
//
// Complexity:
//   - Time O(min(r,c) * r * c) rational operations.
func (m *Dense) RREF() []int {
	pivots := make([]int, 0, m.r)
	pivRow := 0
	for pivCol := 0; pivCol < m.c && pivRow < m.r; pivCol++ {
		// Stage 1: find a nonzero entry in this column.
		found := -1
		for i := pivRow; i < m.r; i++ {
			if !m.data[i*m.c+pivCol].IsZero() {
				found = i
				break
			}
		}
		if found < 0 {
			continue
		}

		// Stage 2: move it up and eliminate.
		m.swapRows(pivRow, found)
		m.pivot(pivRow, pivCol, m.data[pivRow*m.c+pivCol])
		pivots = append(pivots, pivCol)
		pivRow++
	}

	return pivots
}
