// SPDX-License-Identifier: MIT

package rational

import (
	"math/big"
	"strings"
)

// DefaultDigits is the number of fractional digits used by Decimal when the
// caller passes a negative count.
const DefaultDigits = 3

var bigTen = big.NewInt(10)

// String renders r as "p" when r is an integer and as "p/q" otherwise.
func (r Rational) String() string {
	x := r.rat()
	if x.IsInt() {
		return x.Num().String()
	}

	return x.Num().String() + "/" + x.Denom().String()
}

// Decimal renders r with at most digits fractional digits, rounding to the
// nearest value: half a unit of the last kept digit is added before the
// expansion is truncated. When the expansion terminates inside the requested
// precision trailing zeros are trimmed, so 1/2 prints as "0.5" and 2 as "2".
// A negative digits selects DefaultDigits.
//
// Examples (digits = 3): 1/3 -> "0.333", 7/4 -> "1.75", 0.9996 -> "1.000".
func (r Rational) Decimal(digits int) string {
	if digits < 0 {
		digits = DefaultDigits
	}
	// roundingFactor = 5 / 10^(digits+1)
	bias := new(big.Rat).SetFrac(big.NewInt(5), pow10(digits+1))

	return expand(r.rat(), digits, bias)
}

// UpDecimal renders r rounded up (toward +Inf) to digits fractional digits.
// Trailing zeros are trimmed when the rounded value needs fewer digits.
func (r Rational) UpDecimal(digits int) string {
	if digits < 0 {
		digits = DefaultDigits
	}
	scale := new(big.Rat).SetInt(pow10(digits))
	scaled := FromRat(new(big.Rat).Mul(r.rat(), scale)).Ceil()
	up := new(big.Rat).Quo(scaled.rat(), scale)

	return expand(up, digits, new(big.Rat))
}

// Mixed renders r as a mixed number "n + a/b". The integer part truncates
// toward zero and the remainder carries the sign of r, so -7/3 renders as
// "-2 + -1/3". Integers and proper fractions fall back to String.
func (r Rational) Mixed() string {
	x := r.rat()
	q, m := new(big.Int).QuoRem(x.Num(), x.Denom(), new(big.Int))
	if q.Sign() == 0 || m.Sign() == 0 {
		return r.String()
	}

	return q.String() + " + " + m.String() + "/" + x.Denom().String()
}

// expand writes |x| + bias as integer part plus at most digits fractional
// digits. The loop stops early once the remaining fraction equals the
// (rescaled) bias, which means the expansion of x itself has terminated.
func expand(x *big.Rat, digits int, bias *big.Rat) string {
	neg := x.Sign() < 0
	v := new(big.Rat).Abs(x)
	v.Add(v, bias)

	// 1. Integer part and fractional remainder.
	num, den := v.Num(), v.Denom()
	intPart, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	fraction := new(big.Rat).SetFrac(rem, den)
	rf := new(big.Rat).Set(bias)
	ten := new(big.Rat).SetInt(bigTen)

	// 2. Long division, one digit per step.
	var sb strings.Builder
	for n := digits; n > 0 && fraction.Cmp(rf) != 0; n-- {
		fraction.Mul(fraction, ten)
		rf.Mul(rf, ten)
		d, m := new(big.Int).QuoRem(fraction.Num(), fraction.Denom(), new(big.Int))
		sb.WriteString(d.String())
		fraction.SetFrac(m, fraction.Denom())
	}
	frac := sb.String()

	// 3. Exact termination: drop trailing zeros.
	if fraction.Cmp(rf) == 0 {
		frac = strings.TrimRight(frac, "0")
	}

	out := intPart.String()
	if frac != "" {
		out += "." + frac
	}
	// No negative zero.
	if neg && strings.Trim(out, "0.") != "" {
		out = "-" + out
	}

	return out
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
