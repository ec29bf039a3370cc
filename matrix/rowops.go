// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/prodrate/rational"
)

// MulRow multiplies every entry of row i by k, in place.
func (m *Dense) MulRow(i int, k rational.Rational) error {
	if err := m.checkRow(ctxMulRow, i); err != nil {
		return err
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = row[j].Mul(k)
	}

	return nil
}

// AddRowMultiple performs row[dst] += k * row[src], in place.
func (m *Dense) AddRowMultiple(dst, src int, k rational.Rational) error {
	if err := m.checkRow(ctxAddRow, dst); err != nil {
		return err
	}
	if err := m.checkRow(ctxAddRow, src); err != nil {
		return err
	}
	m.addRowMultiple(dst, src, k)

	return nil
}

// addRowMultiple is the unchecked body of AddRowMultiple.
func (m *Dense) addRowMultiple(dst, src int, k rational.Rational) {
	if k.IsZero() {
		return
	}
	d := m.data[dst*m.c : (dst+1)*m.c]
	s := m.data[src*m.c : (src+1)*m.c]
	for j := range d {
		if s[j].IsZero() {
			continue
		}
		d[j] = d[j].Add(s[j].Mul(k))
	}
}

// SwapRows exchanges rows a and b, in place.
func (m *Dense) SwapRows(a, b int) error {
	if err := m.checkRow(ctxSwap, a); err != nil {
		return err
	}
	if err := m.checkRow(ctxSwap, b); err != nil {
		return err
	}
	m.swapRows(a, b)

	return nil
}

func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// ZeroRow sets every entry of row i to zero.
func (m *Dense) ZeroRow(i int) error {
	if err := m.checkRow(ctxZeroR, i); err != nil {
		return err
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = rational.Zero
	}

	return nil
}

// ZeroColumn sets every entry of column j to zero.
func (m *Dense) ZeroColumn(j int) error {
	if err := m.checkCol(ctxZeroC, j); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = rational.Zero
	}

	return nil
}

// MulPosColumn multiplies the strictly positive entries of column j by k and
// leaves zero and negative entries untouched.
func (m *Dense) MulPosColumn(j int, k rational.Rational) error {
	if err := m.checkCol(ctxMulPos, j); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		off := i*m.c + j
		if m.data[off].Sign() <= 0 {
			continue
		}
		m.data[off] = m.data[off].Mul(k)
	}

	return nil
}

// SetColumn overwrites column j with col; len(col) must equal Rows().
func (m *Dense) SetColumn(j int, col []rational.Rational) error {
	if err := m.checkCol(ctxSetCol, j); err != nil {
		return err
	}
	if len(col) != m.r {
		return fmt.Errorf("Dense.%s(%d): got %d values for %d rows: %w", ctxSetCol, j, len(col), m.r, ErrDimensionMismatch)
	}
	for i, v := range col {
		m.data[i*m.c+j] = v
	}

	return nil
}

// AppendColumn returns a new matrix with col added as the last column.
// The receiver is not modified.
func (m *Dense) AppendColumn(col []rational.Rational) (*Dense, error) {
	if len(col) != m.r {
		return nil, fmt.Errorf("Dense.AppendColumn: got %d values for %d rows: %w", len(col), m.r, ErrDimensionMismatch)
	}
	out := m.AppendColumns(1)
	for i, v := range col {
		out.data[i*out.c+m.c] = v
	}

	return out, nil
}

// AppendColumns returns a new matrix with n zero columns added on the right.
// The receiver is not modified; n <= 0 yields a plain copy.
func (m *Dense) AppendColumns(n int) *Dense {
	if n < 0 {
		n = 0
	}
	cols := m.c + n
	data := make([]rational.Rational, m.r*cols)
	for i := 0; i < m.r; i++ {
		copy(data[i*cols:i*cols+m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return &Dense{r: m.r, c: cols, data: data}
}
