// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
)

// Rational is an exact fraction p/q.
//
// The value is immutable: every method returns a new Rational and never
// mutates the receiver or its argument. The zero value is 0/1 and ready to use.
// Internally a nil pointer stands for zero, so copies of Rational are cheap.
type Rational struct {
	v *big.Rat // nil == 0; never mutated after construction
}

// Frequently used constants. They are safe to share because Rational is immutable.
var (
	Zero      = Rational{}
	One       = FromInt(1)
	MinusOne  = FromInt(-1)
	Half      = MustNew(1, 2)
	OneThird  = MustNew(1, 3)
	TwoThirds = MustNew(2, 3)
)

// New returns p/q in reduced form with a positive denominator.
// Returns ErrZeroDenominator if q == 0.
// Complexity: O(log² max(|p|,q)) for the gcd reduction.
func New(p, q int64) (Rational, error) {
	if q == 0 {
		return Rational{}, fmt.Errorf("New(%d, 0): %w", p, ErrZeroDenominator)
	}
	// big.Rat.SetFrac64 normalizes sign and reduces by the gcd.
	return wrap(new(big.Rat).SetFrac64(p, q)), nil
}

// MustNew is like New but panics on a zero denominator.
// Use it only for compile-time constants.
func MustNew(p, q int64) Rational {
	r, err := New(p, q)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt returns the integer n as a Rational.
func FromInt(n int64) Rational {
	return wrap(new(big.Rat).SetInt64(n))
}

// FromBig returns p/q built from arbitrary-precision integers.
// The arguments are copied; the caller keeps ownership.
func FromBig(p, q *big.Int) (Rational, error) {
	if q == nil || q.Sign() == 0 {
		return Rational{}, fmt.Errorf("FromBig: %w", ErrZeroDenominator)
	}
	if p == nil {
		p = new(big.Int)
	}

	return wrap(new(big.Rat).SetFrac(p, q)), nil
}

// FromRat returns a Rational holding a copy of x. A nil x is zero.
func FromRat(x *big.Rat) Rational {
	if x == nil {
		return Rational{}
	}

	return wrap(new(big.Rat).Set(x))
}

// wrap stores v, collapsing zero to the nil representation.
func wrap(v *big.Rat) Rational {
	if v.Sign() == 0 {
		return Rational{}
	}

	return Rational{v: v}
}

// rat returns a read-only view of the value. Callers must not mutate it.
func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// Rat returns a copy of the value as a *big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).Set(r.rat())
}

// Num returns a copy of the (signed) numerator.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Denom returns a copy of the (positive) denominator.
func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return wrap(new(big.Rat).Add(r.rat(), o.rat()))
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational {
	return wrap(new(big.Rat).Sub(r.rat(), o.rat()))
}

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	return wrap(new(big.Rat).Mul(r.rat(), o.rat()))
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	if o.IsZero() {
		return Rational{}, fmt.Errorf("Div(%s, 0): %w", r, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Quo(r.rat(), o.rat())), nil
}

// Reciprocal returns 1/r, or ErrDivisionByZero when r is zero.
func (r Rational) Reciprocal() (Rational, error) {
	if r.IsZero() {
		return Rational{}, fmt.Errorf("Reciprocal(0): %w", ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Inv(r.rat())), nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return wrap(new(big.Rat).Neg(r.rat()))
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.Sign() >= 0 {
		return r
	}

	return r.Neg()
}

// Floor returns the greatest integer <= r.
func (r Rational) Floor() Rational {
	x := r.rat()
	// Euclidean division by a positive denominator is floor division.
	q := new(big.Int).Div(x.Num(), x.Denom())

	return wrap(new(big.Rat).SetInt(q))
}

// Ceil returns the least integer >= r.
func (r Rational) Ceil() Rational {
	return r.Neg().Floor().Neg()
}

// DivMod returns the floor quotient q = floor(r/o) and the remainder r - o*q.
// For a positive divisor the remainder lies in [0, o).
// Returns ErrDivisionByZero when o is zero.
func (r Rational) DivMod(o Rational) (quotient, remainder Rational, err error) {
	ratio, err := r.Div(o)
	if err != nil {
		return Rational{}, Rational{}, fmt.Errorf("DivMod: %w", err)
	}
	quotient = ratio.Floor()
	remainder = r.Sub(o.Mul(quotient))

	return quotient, remainder, nil
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	return r.rat().Cmp(o.rat())
}

// Less reports whether r < o.
func (r Rational) Less(o Rational) bool {
	return r.Cmp(o) < 0
}

// Equal reports whether r == o exactly.
func (r Rational) Equal(o Rational) bool {
	return r.Cmp(o) == 0
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rational) Sign() int {
	if r.v == nil {
		return 0
	}

	return r.v.Sign()
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsInteger reports whether the denominator is 1.
func (r Rational) IsInteger() bool {
	return r.rat().IsInt()
}

// Float64 returns the nearest float64. It is meant for display and metrics
// only; nothing on the resolution path may depend on it.
func (r Rational) Float64() float64 {
	f, _ := r.rat().Float64()

	return f
}

// Max returns the larger of a and b.
func Max(a, b Rational) Rational {
	if a.Less(b) {
		return b
	}

	return a
}

// Min returns the smaller of a and b.
func Min(a, b Rational) Rational {
	if b.Less(a) {
		return b
	}

	return a
}

// Sum adds all values; the sum of nothing is zero.
func Sum(values ...Rational) Rational {
	acc := new(big.Rat)
	for _, v := range values {
		acc.Add(acc, v.rat())
	}

	return wrap(acc)
}
