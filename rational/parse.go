// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// floatScale is the precision game data floats are snapped to.
const floatScale = 100000

// Parse reads a rational literal. Accepted forms:
//
//	"7"        integer
//	"-3/4"     fraction
//	"2 + 1/3"  mixed number (integer part and fraction are added)
//	"0.125"    decimal, read exactly
//
// Whitespace around tokens is ignored. Returns ErrSyntax for anything else and
// ErrZeroDenominator for "a/0".
func Parse(s string) (Rational, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	slash := strings.IndexByte(src, '/')
	if slash < 0 {
		// Decimal or integer literal; big.Rat keeps it exact.
		v, ok := new(big.Rat).SetString(src)
		if !ok {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}

		return wrap(v), nil
	}

	den, ok := new(big.Int).SetString(strings.TrimSpace(src[slash+1:]), 10)
	if !ok {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrZeroDenominator)
	}

	head := src[:slash]
	whole := new(big.Int)
	// A '+' after the first character separates the integer part.
	if plus := strings.LastIndexByte(head, '+'); plus > 0 {
		if _, ok = whole.SetString(strings.TrimSpace(head[:plus]), 10); !ok {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}
		head = head[plus+1:]
	}
	num, ok := new(big.Int).SetString(strings.TrimSpace(head), 10)
	if !ok {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	v := new(big.Rat).SetFrac(num, den)
	v.Add(v, new(big.Rat).SetInt(whole))

	return wrap(v), nil
}

// MustParse is like Parse but panics on error. Use it for literals only.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// FromFloat converts a data-file float into a Rational.
//
// Integers convert exactly. Other values are rounded to five decimal places,
// and a fractional part of .33333 or .66667 (also .66666) is recognised as 1/3
// or 2/3, since that is how thirds appear in exported game data.
// Returns ErrNotFinite for NaN and ±Inf.
func FromFloat(x float64) (Rational, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Rational{}, fmt.Errorf("FromFloat(%v): %w", x, ErrNotFinite)
	}
	if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
		return FromInt(int64(x)), nil
	}

	scaled := new(big.Float).SetFloat64(math.Round(x * floatScale))
	n, _ := scaled.Int(nil)
	r := wrap(new(big.Rat).SetFrac(n, big.NewInt(floatScale)))

	// Snap thirds; the floor remainder is in [0, 1).
	whole := r.Floor()
	switch frac := r.Sub(whole); {
	case frac.Equal(MustNew(33333, floatScale)):
		return whole.Add(OneThird), nil
	case frac.Equal(MustNew(66667, floatScale)), frac.Equal(MustNew(66666, floatScale)):
		return whole.Add(TwoThirds), nil
	}

	return r, nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}
