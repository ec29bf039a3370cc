// Package simplex runs the primal simplex method on an exact rational tableau.
//
// Tableau layout (matrix.Dense):
//
//	rows 0..R-2  constraint rows
//	row  R-1     cost row
//	cols 0..C-2  variables
//	col  C-1     right-hand side (RHS)
//
// Each iteration applies Dantzig's rule:
//
//  1. Entering column: the most negative cost-row entry among the variable
//     columns. The first such column wins ties.
//  2. Leaving row: among constraint rows whose entry in the entering column is
//     strictly positive, the one with the smallest RHS/entry ratio. The first
//     such row wins ties.
//  3. Pivot on (row, column), eliminating the column from every other row,
//     the cost row included.
//
// The run stops when no cost-row entry is negative. On return the tableau
// holds the final state; callers read their answer off the cost row.
//
// Safeguards:
//   - ErrUnbounded when an entering column has no positive entry.
//   - ErrPivotLimit when the pivot budget (WithMaxPivots) is exhausted, which
//     also stops the rare degenerate cycle Dantzig's rule can fall into.
//
// Complexity:
//   - Each pivot costs O(R*C) rational operations. The number of pivots is
//     small in practice but exponential in the worst case.
package simplex
