// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrZeroDenominator is returned when a fraction is constructed with q == 0.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned by Div, DivMod and Reciprocal when the
	// divisor (or the receiver, for Reciprocal) is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax indicates a string that is not a valid rational literal.
	ErrSyntax = errors.New("rational: invalid syntax")

	// ErrNotFinite indicates a NaN or infinite float passed to FromFloat.
	ErrNotFinite = errors.New("rational: value is not finite")
)
