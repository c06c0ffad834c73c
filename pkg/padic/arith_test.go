// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package padic

import (
	"strings"
	"testing"

	"github.com/consensys/go-padic/pkg/util/assert"
)

// ============================================================================
// Addition
// ============================================================================

func Test_Add_01(t *testing.T) {
	check_Add(t, "122", "221", "343", 5)
	check_Add(t, "122", "122", "244", 5)
	check_Add(t, "123", "0.1", "123.1", 5)
	check_Add(t, "123", "300", "423", 5)
	check_Add(t, "123", "0.001", "123.001", 5)
	check_Add(t, "300", "0.001", "300.001", 5)
	check_Add(t, "1.234", "3.211", "10", 5)
	check_Add(t, "0.2", "0.3", "1", 5)
	check_Add(t, "0.2", "0.0002", "0.2002", 5)
}

func Test_Add_02(t *testing.T) {
	check_Add(t, "123", "123", "246", 7)
	check_Add(t, "123.456", "654.321", "1111.11", 7)
}

func Test_Add_03(t *testing.T) {
	var (
		x = str(t, "1231.00120", 5)
		y = str(t, "13211", 5)
		z = str(t, "1.23", 5)
		r = str(t, "14443.2312", 5)
	)
	//
	assert.Equivalent(t, r, add(t, add(t, x, y), z))
	assert.Equivalent(t, r, add(t, add(t, z, y), x))
	assert.Equivalent(t, r, add(t, add(t, y, x), z))
	assert.Equivalent(t, r, add(t, x, add(t, y, z)))
	assert.Equivalent(t, r, add(t, z, add(t, y, x)))
	assert.Equivalent(t, r, add(t, y, add(t, z, x)))
}

func Test_Add_04(t *testing.T) {
	// Cancellation yields canonical zero
	zero := str(t, "0", 5)
	assert.Equivalent(t, zero, add(t, str(t, "10", 5), integer(t, -5, 5)))
	assert.Equivalent(t, zero, add(t, integer(t, -5, 5), str(t, "10", 5)))
	assert.Equivalent(t, zero, add(t, str(t, "12.34", 5), str(t, "12.34", 5).Negate()))
	//
	x := str(t, "123", 5)
	y := str(t, "0.1", 5)
	z := rational(t, -1, 5, 5)
	assert.Equivalent(t, x, add(t, add(t, x, y), z))
}

func Test_Add_05(t *testing.T) {
	// Negative integers
	assert.Equivalent(t, integer(t, -123, 5), add(t, integer(t, -125, 5), integer(t, 2, 5)))
	assert.Equivalent(t, integer(t, -123, 5), add(t, integer(t, -125, 5), str(t, "2", 5)))
	assert.Equivalent(t, integer(t, 0, 5), add(t, integer(t, -1, 5), integer(t, 1, 5)))
	assert.Equivalent(t, integer(t, 1000, 11), add(t, integer(t, -1000, 11), integer(t, 2000, 11)))
}

// ============================================================================
// Subtraction
// ============================================================================

func Test_Subtract_01(t *testing.T) {
	check_Subtract(t, "0.1", "0.1", "0", 5)
	check_Subtract(t, "1", "1", "0", 5)
	check_Subtract(t, "1.0", "0.3", "0.2", 5)
	check_Subtract(t, "1.0", "0.2", "0.3", 5)
	check_Subtract(t, "0", "0", "0", 5)
	check_Subtract(t, "1.0", "0", "1", 5)
	check_Subtract(t, "0.2", "0.2", "0", 5)
	check_Subtract(t, "13211", "1231.0012", "11424.4433", 5)
	check_Subtract(t, "12321.1232", "13.21", "12302.4132", 5)
	check_Subtract(t, "0.1", "0.0001", "0.0444", 5)
	check_Subtract(t, "30", "11", "14", 5)
}

func Test_Subtract_02(t *testing.T) {
	check_Subtract(t, "100", "0.0001", "66.6666", 7)
	check_Subtract(t, "123", "0.0001", "122.6666", 7)
	check_Subtract(t, "123.0001", "0.0001", "123", 7)
	check_Subtract(t, "123.0001", "123", "0.0001", 7)
	check_Subtract(t, "123.0001", "100", "23.0001", 7)
}

func Test_Subtract_03(t *testing.T) {
	var (
		rat  = rational(t, 1, 5, 5)
		pt   = str(t, "0.1", 5)
		zero = str(t, "0", 5)
		one  = str(t, "1", 5)
	)
	//
	assert.Equivalent(t, zero, sub(t, rat, pt))
	assert.Equivalent(t, zero, sub(t, pt, rat))
	assert.Equal(t, 0, sub(t, one, one).Order())
	assert.Equivalent(t, pt, sub(t, sub(t, str(t, "11.1", 5), str(t, "10", 5)), one))
	//
	d := str(t, "123.0001", 7)
	b := str(t, "0.0001", 7)
	c := str(t, "123", 7)
	assert.Equivalent(t, str(t, "0", 7), sub(t, sub(t, d, c), b))
	assert.Equivalent(t, str(t, "0", 7), sub(t, sub(t, d, b), c))
}

func Test_Subtract_04(t *testing.T) {
	// Results which are negative as rationals
	var (
		x = str(t, "1231.0012", 5)
		y = str(t, "13211", 5)
		z = str(t, "1.23", 5)
	)
	//
	assert.Equivalent(t, sub(t, y, x).Negate(), sub(t, x, y))
	assert.Equivalent(t, sub(t, x, z).Negate(), sub(t, z, x))
	assert.Equivalent(t, integer(t, -3, 5), sub(t, integer(t, 2, 5), integer(t, 5, 5)))
	assert.Equivalent(t, rational(t, -1, 5, 5), sub(t, str(t, "0.1", 5), str(t, "0.2", 5)))
	// Leading digits of x - y in canonical form
	assert.True(t, len(sub(t, x, y).String()) == Window+1)
	assert.Equal(t, "4433020.0012", suffix(sub(t, x, y).String(), 12))
	assert.Equal(t, "4443220.2233", suffix(sub(t, z, x).String(), 12))
}

// ============================================================================
// Multiplication
// ============================================================================

func Test_Multiply_01(t *testing.T) {
	check_Multiply(t, "123.4", "1", "123.4", 5)
	check_Multiply(t, "2222", "0.1", "222.2", 5)
	check_Multiply(t, "10", "0.1", "1", 5)
	check_Multiply(t, "0.1", "0.1", "0.01", 5)
	check_Multiply(t, "1", "0.01", "0.01", 5)
	check_Multiply(t, "0.01", "1", "0.01", 5)
	check_Multiply(t, "100", "0.1", "10", 5)
	check_Multiply(t, "0.1", "100", "10", 5)
	check_Multiply(t, "1231.0012", "13200", "22404221.34", 5)
	check_Multiply(t, "13200", "1231.0012", "22404221.34", 5)
	check_Multiply(t, "100", "1.23", "123", 5)
	check_Multiply(t, "0.001", "1000", "1", 5)
	check_Multiply(t, "0.001", "100", "0.1", 5)
	check_Multiply(t, "0.01", "1000", "10", 5)
}

func Test_Multiply_02(t *testing.T) {
	var (
		sixth = rational(t, 1, 6, 5)
		six   = rational(t, 6, 1, 5)
		one   = integer(t, 1, 5)
		two   = integer(t, 2, 5)
		half  = rational(t, 1, 2, 5)
		zero  = integer(t, 0, 5)
	)
	//
	assert.Equivalent(t, one, mul(t, sixth, six))
	assert.Equivalent(t, one, mul(t, one, one))
	assert.Equivalent(t, one, mul(t, mul(t, mul(t, sixth, two), half), six))
	assert.Equivalent(t, zero, mul(t, zero, zero))
	assert.Equivalent(t, zero, mul(t, zero, two))
	assert.Equivalent(t, zero, mul(t, str(t, "0.1", 5), zero))
	//
	acc := one
	for range 20 {
		acc = mul(t, acc, one)
	}
	//
	assert.Equivalent(t, one, acc)
}

func Test_Multiply_03(t *testing.T) {
	// Products of negative numbers
	assert.Equivalent(t, integer(t, 6, 7), mul(t, integer(t, -2, 7), integer(t, -3, 7)))
	assert.Equivalent(t, integer(t, -6, 7), mul(t, integer(t, 2, 7), integer(t, -3, 7)))
	assert.Equivalent(t, rational(t, -1, 49, 7), mul(t, rational(t, 1, 7, 7), rational(t, -1, 7, 7)))
}

// ============================================================================
// Division
// ============================================================================

func Test_Divide_01(t *testing.T) {
	check_Divide(t, "222.2", "111.1", "2", 5)
	check_Divide(t, "222.2", "2", "111.1", 5)
	check_Divide(t, "2", "0.1", "20", 5)
	check_Divide(t, "1", "10", "0.1", 5)
	check_Divide(t, "0.1", "0.1", "1", 5)
	check_Divide(t, "1", "1", "1", 2)
	check_Divide(t, "10", "10", "1", 2)
}

func Test_Divide_02(t *testing.T) {
	check_Divide(t, "2", "2", "1", 7)
	check_Divide(t, "11", "2", "4", 7)
	check_Divide(t, "4", "2", "2", 7)
	check_Divide(t, "1", "14", "", 7)
	//
	assert.Equivalent(t, rational(t, 1, 11, 7), div(t, str(t, "1", 7), str(t, "14", 7)))
}

func Test_Divide_03(t *testing.T) {
	assert.Equivalent(t, rational(t, 1, 4, 5), div(t, rational(t, 1, 2, 5), rational(t, 2, 1, 5)))
	assert.Equivalent(t, rational(t, 1, 4, 11), div(t, rational(t, 1, 2, 11), rational(t, 2, 1, 11)))
	assert.Equivalent(t, rational(t, 1, 14, 7), div(t, rational(t, 23, 14, 7), integer(t, 23, 7)))
	assert.Equivalent(t, integer(t, -5, 5), div(t, integer(t, -125, 5), str(t, "100", 5)))
	assert.Equivalent(t, integer(t, 1, 2), div(t, integer(t, 2, 2), integer(t, 2, 2)))
}

func Test_Divide_04(t *testing.T) {
	var (
		x = str(t, "12321.1232", 5)
		y = str(t, "13.21", 5)
	)
	//
	q := div(t, x, y)
	assert.False(t, q.Equals(x))
	assert.Equivalent(t, x, mul(t, q, y))
}

func Test_Divide_05(t *testing.T) {
	_, err := integer(t, 1, 5).Divide(integer(t, 0, 5))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	_, err = str(t, "0.1", 5).Divide(str(t, "000.000", 5))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	//
	q, err := integer(t, 0, 5).Divide(str(t, "0.1", 5))
	assert.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.Equal(t, 0, q.Order())
}

// ============================================================================
// Combined
// ============================================================================

func Test_Combined_01(t *testing.T) {
	var (
		a = str(t, "11", 7)
		b = str(t, "2", 7)
		c = str(t, "60", 7)
	)
	// ((a/b - 2b + 1) * c) - 4a
	r1 := div(t, a, b)
	r1 = add(t, sub(t, r1, mul(t, b, str(t, "2", 7))), str(t, "1", 7))
	r1 = mul(t, r1, c)
	r1 = sub(t, r1, mul(t, a, str(t, "4", 7)))
	// c(-2b² + a + b)/b - 4ab/b - b
	r2 := mul(t, mul(t, mul(t, b, b), str(t, "2", 7)), integer(t, -1, 7))
	r2 = div(t, mul(t, c, add(t, add(t, r2, a), b)), b)
	r2 = sub(t, r2, div(t, mul(t, mul(t, a, b), str(t, "4", 7)), b))
	r2 = sub(t, r2, b)
	//
	assert.Equivalent(t, b, sub(t, r1, r2))
}

// ============================================================================
// Precision
// ============================================================================

func Test_Precision_01(t *testing.T) {
	var (
		one = integer(t, 1, 5)
		// 5⁻⁶⁰
		eps = str(t, "0."+strings.Repeat("0", 59)+"1", 5)
	)
	// Aligning -1 with eps pushes its upper digits out of the buffer, hence
	// cancelling eps leaves too few digits known.
	x := add(t, one.Negate(), eps)
	_, err := x.Subtract(eps)
	assert.ErrorIs(t, err, ErrPrecisionOverflow)
	_, err = x.Add(eps.Negate())
	assert.ErrorIs(t, err, ErrPrecisionOverflow)
	// Whereas 1 has no upper digits to lose
	assert.Equivalent(t, eps, sub(t, add(t, one, eps), one))
	assert.Equivalent(t, one, sub(t, add(t, one, eps), eps))
}

func Test_Precision_02(t *testing.T) {
	var (
		minus = integer(t, -1, 5)
		// 5⁻⁴⁴ is the largest gap the guard digits absorb
		eps = str(t, "0."+strings.Repeat("0", 43)+"1", 5)
	)
	//
	assert.Equivalent(t, minus, sub(t, add(t, minus, eps), eps))
	// One more is too many
	eps = str(t, "0."+strings.Repeat("0", 44)+"1", 5)
	_, err := add(t, minus, eps).Subtract(eps)
	assert.ErrorIs(t, err, ErrPrecisionOverflow)
}

func Test_Precision_03(t *testing.T) {
	var (
		third = rational(t, 1, 3, 5)
		high  = power(t, 5, 100)
	)
	// Large gaps between orders are harmless for integers and products
	assert.Equivalent(t, third, sub(t, add(t, third, high), high))
	assert.Equivalent(t, third, div(t, mul(t, third, high), high))
	assert.Equivalent(t, third.Negate(), sub(t, sub(t, high, third), high))
	assert.Equal(t, 100, mul(t, third, high).Order())
}

func Test_Mismatch_01(t *testing.T) {
	var (
		x = integer(t, 1, 5)
		y = integer(t, 1, 7)
	)
	//
	_, err := x.Add(y)
	assert.ErrorIs(t, err, ErrBaseMismatch)
	_, err = x.Subtract(y)
	assert.ErrorIs(t, err, ErrBaseMismatch)
	_, err = x.Multiply(y)
	assert.ErrorIs(t, err, ErrBaseMismatch)
	_, err = x.Divide(y)
	assert.ErrorIs(t, err, ErrBaseMismatch)
	// Zero value numbers have no valid base
	_, err = Number{}.Add(Number{})
	assert.ErrorIs(t, err, ErrInvalidBase)
}

// ============================================================================
// Test Helpers
// ============================================================================

func check_Add(t *testing.T, lhs, rhs, expected string, base uint) {
	t.Helper()
	assert.Equivalent(t, str(t, expected, base), add(t, str(t, lhs, base), str(t, rhs, base)))
}

func check_Subtract(t *testing.T, lhs, rhs, expected string, base uint) {
	t.Helper()
	assert.Equivalent(t, str(t, expected, base), sub(t, str(t, lhs, base), str(t, rhs, base)))
}

func check_Multiply(t *testing.T, lhs, rhs, expected string, base uint) {
	t.Helper()
	assert.Equivalent(t, str(t, expected, base), mul(t, str(t, lhs, base), str(t, rhs, base)))
}

func check_Divide(t *testing.T, lhs, rhs, expected string, base uint) {
	t.Helper()
	//
	var (
		x = str(t, lhs, base)
		y = str(t, rhs, base)
		q = div(t, x, y)
	)
	//
	if expected != "" {
		assert.Equivalent(t, str(t, expected, base), q)
	}
	// Division must always be undone by multiplication
	assert.Equivalent(t, x, mul(t, q, y))
}

func add(t *testing.T, x, y Number) Number {
	t.Helper()
	r, err := x.Add(y)
	assert.NoError(t, err)

	return r
}

func sub(t *testing.T, x, y Number) Number {
	t.Helper()
	r, err := x.Subtract(y)
	assert.NoError(t, err)

	return r
}

func mul(t *testing.T, x, y Number) Number {
	t.Helper()
	r, err := x.Multiply(y)
	assert.NoError(t, err)

	return r
}

func div(t *testing.T, x, y Number) Number {
	t.Helper()
	r, err := x.Divide(y)
	assert.NoError(t, err)

	return r
}

func suffix(text string, n int) string {
	return text[len(text)-n:]
}
