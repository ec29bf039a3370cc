// SPDX-License-Identifier: MIT

// Package rational implements an exact, immutable fraction type used for every
// quantity on the production-rate resolution path.
//
// What:
//
//   - Rational: p/q with q > 0 and gcd(|p|, q) == 1 after every construction;
//     zero is represented uniquely as 0/1. The zero value of Rational is 0.
//   - Arithmetic: Add, Sub, Mul, Div, Reciprocal, Neg, Abs, Floor, Ceil, DivMod.
//   - Comparison: Cmp, Less, Equal, Sign, IsZero, IsInteger (all exact).
//   - Rendering: String ("p" or "p/q"), Decimal (round-to-nearest with a
//     half-unit bias), UpDecimal (round up), Mixed ("n + r/d").
//   - Parsing: Parse ("a/b", "n + a/b", decimal strings) and FromFloat, which
//     snaps game-data floats to five decimal places and recognises 1/3 and 2/3.
//
// Why:
//
//	Recipe ratios are small rationals. Cascading float rounding would corrupt
//	the equality checks used when grouping recipes and reading back simplex
//	solutions, so nothing in the engine uses floating point for computation.
//
// Errors:
//
//   - ErrZeroDenominator  constructing p/0
//   - ErrDivisionByZero   Div or Reciprocal with a zero operand
//   - ErrSyntax           malformed input to Parse
//   - ErrNotFinite        NaN or ±Inf passed to FromFloat
//
// Complexity:
//
//	Every operation allocates a fresh math/big value; cost grows with the bit
//	length of numerator and denominator (gcd reduction dominates).
package rational
