// SPDX-License-Identifier: MIT

// Package matrix provides a dense matrix of exact rationals and the row
// operations needed by the simplex engine and the equation solver.
//
// The matrix package provides:
//
//   - Dense: row-major, zero-initialized, mutable in place; bounds-checked
//     accessors (At, Set, AddAt) that return errors instead of panicking.
//   - Row operations: MulRow, SwapRows, ZeroRow, AddRowMultiple.
//   - Column operations: MulPosColumn (scales strictly positive entries only),
//     SetColumn, ZeroColumn, AppendColumn, AppendColumns.
//   - Elimination: Pivot (one Gauss-Jordan step) and RREF (reduced row echelon
//     form, exact, idempotent).
//
// All arithmetic is exact; there is no epsilon anywhere in this package. A zero
// entry is exactly zero.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1) plus rational cost; Pivot: O(r*c); RREF: O(r²*c).
package matrix
