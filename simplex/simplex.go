package simplex

import (
	"fmt"

	"github.com/katalvlaran/prodrate/matrix"
	"github.com/katalvlaran/prodrate/rational"
)

// Solve runs the simplex method on A in place. See the package documentation
// for the tableau layout and the pivoting rule.
//
// Errors:
//   - ErrBadTableau for a nil or too small tableau.
//   - ErrUnbounded, ErrPivotLimit as described in the package documentation.
//   - the context error when Ctx is cancelled between pivots.
//
// On error the tableau holds the state reached so far and must be discarded.
func Solve(A *matrix.Dense, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if A == nil || A.Rows() < 2 || A.Cols() < 2 {
		return Result{}, ErrBadTableau
	}

	var res Result
	for {
		// Stage 1: entering column.
		col, ok := enteringColumn(A)
		if !ok {
			return res, nil
		}
		if res.Pivots >= o.MaxPivots {
			return res, fmt.Errorf("Solve: after %d pivots: %w", res.Pivots, ErrPivotLimit)
		}
		if err := o.Ctx.Err(); err != nil {
			return res, fmt.Errorf("Solve: %w", err)
		}

		// Stage 2: leaving row by the minimum ratio test.
		row, ok := leavingRow(A, col)
		if !ok {
			return res, fmt.Errorf("Solve: column %d: %w", col, ErrUnbounded)
		}

		// Stage 3: pivot.
		if err := A.Pivot(row, col); err != nil {
			return res, fmt.Errorf("Solve: %w", err)
		}
		res.Pivots++
		if o.OnPivot != nil {
			o.OnPivot(row, col)
		}
	}
}

// enteringColumn returns the variable column with the most negative cost-row
// entry, or false when none is negative.
func enteringColumn(A *matrix.Dense) (int, bool) {
	costRow := A.Rows() - 1
	best, lowest := -1, rational.Zero
	for j := 0; j < A.Cols()-1; j++ {
		x, _ := A.At(costRow, j)
		if x.Less(lowest) {
			best, lowest = j, x
		}
	}

	return best, best >= 0
}

// leavingRow returns the constraint row with a positive entry in col and the
// smallest RHS/entry ratio, or false when no entry is positive.
func leavingRow(A *matrix.Dense, col int) (int, bool) {
	rhs := A.Cols() - 1
	best := -1
	var bestRatio rational.Rational
	for i := 0; i < A.Rows()-1; i++ {
		x, _ := A.At(i, col)
		if x.Sign() <= 0 {
			continue
		}
		b, _ := A.At(i, rhs)
		ratio, _ := b.Div(x) // x > 0
		if best < 0 || ratio.Less(bestRatio) {
			best, bestRatio = i, ratio
		}
	}

	return best, best >= 0
}
