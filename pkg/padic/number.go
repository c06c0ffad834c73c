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
// Package padic implements fixed-precision p-adic numbers.  A number is held
// as Precision base-p digits together with its order (valuation), and every
// value is immutable: arithmetic always returns a fresh number.
//
// Digit i of a number with order k is the coefficient of p^(i+k), hence digit
// 0 of every nonzero number is nonzero.  Only the lowest Window digits take
// part in equality and rendering.  The remainder are guard digits, which
// absorb the precision lost when operands of different orders are aligned and
// their sum cancels.  Each number records how many of its digits are known
// exactly, and arithmetic fails with PrecisionOverflow rather than return a
// number whose significant digits are not all known.
package padic

import (
	"math/big"
	"slices"

	"github.com/consensys/go-padic/pkg/util/collection/hash"
)

const (
	// Precision is the number of base-p digits held by every number.
	Precision = 128
	// Window is the number of low-order digits which are considered
	// significant.
	Window = Precision / 3 * 2
	// MaxStringBase is the largest base for which canonical strings can be
	// parsed, since every digit must be a single decimal character.
	MaxStringBase = 7
)

// FNV1a constants
const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Number is a p-adic number approximated by a fixed number of digits.  The
// zero value is not a valid number; use one of the constructors.
type Number struct {
	base  uint32
	order int
	// Number of low-order digits which are known exactly.  This is never less
	// than Window.
	accuracy int
	// Indicates every digit above those held is zero, i.e. this has a finite
	// base-p expansion which fits entirely in the buffer.
	finite bool
	digits buffer
}

var _ hash.Hasher[Number] = Number{}

// Zero returns the additive identity for the given base.
func Zero(base uint) (Number, error) {
	if err := CheckPrime(base); err != nil {
		return Number{}, err
	}
	//
	return zero(uint32(base)), nil
}

func zero(base uint32) Number {
	return Number{base: base, accuracy: Precision, finite: true}
}

// One returns the multiplicative identity for the given base.
func One(base uint) (Number, error) {
	n, err := Zero(base)
	if err != nil {
		return n, err
	}
	//
	n.digits[0] = 1
	//
	return n, nil
}

// FromInteger constructs the p-adic representation of an integer.  Negative
// values are represented by their complement, e.g. -1 is ...(p-1)(p-1).  An
// error is returned if the integer has more than Window significant digits,
// i.e. digits from the lowest nonzero one upwards.
func FromInteger(value *big.Int, base uint) (Number, error) {
	var quotient, digit big.Int
	//
	n, err := Zero(base)
	if err != nil || value.Sign() == 0 {
		return n, err
	}
	//
	current := new(big.Int).Abs(value)
	modulus := new(big.Int).SetUint64(uint64(base))
	// Factors of the base determine the order
	for {
		quotient.QuoRem(current, modulus, &digit)
		//
		if digit.Sign() != 0 {
			break
		}
		//
		current.Set(&quotient)
		n.order++
	}
	//
	for i := 0; current.Sign() != 0; i++ {
		if i == Window {
			return Number{}, newError(PrecisionOverflow, "%v has more than %d significant base-%d digits", value,
				Window, base)
		}
		//
		current.QuoRem(current, modulus, &digit)
		n.digits[i] = uint32(digit.Uint64())
	}
	//
	if value.Sign() < 0 {
		n = n.Negate()
	}
	//
	return n, nil
}

// FromInt64 is a convenience wrapper around FromInteger.
func FromInt64(value int64, base uint) (Number, error) {
	return FromInteger(big.NewInt(value), base)
}

// FromRational constructs the p-adic representation of the fraction
// numerator/denominator.
func FromRational(numerator, denominator *big.Int, base uint) (Number, error) {
	if err := CheckPrime(base); err != nil {
		return Number{}, err
	} else if denominator.Sign() == 0 {
		return Number{}, newError(DivisionByZero, "fraction %v/%v has zero denominator", numerator, denominator)
	}
	// Reduce the fraction first, so that common factors of the base do not
	// cost precision.
	var (
		gcd = new(big.Int).GCD(nil, nil, new(big.Int).Abs(numerator), new(big.Int).Abs(denominator))
		num = new(big.Int).Quo(numerator, gcd)
		den = new(big.Int).Quo(denominator, gcd)
	)
	//
	x, err := FromInteger(num, base)
	if err != nil {
		return Number{}, err
	}
	//
	y, err := FromInteger(den, base)
	if err != nil {
		return Number{}, err
	}
	//
	return x.Divide(y)
}

// FromDigits constructs a number from a sequence of digits given least
// significant first, together with its order.  The order takes precedence
// over any zeros at the start of the sequence: the first nonzero digit is
// always placed at base^order.  For example, digits {6,5,4,3,2,1} with order
// -3 give 123.456, whilst {0,0,2,3} with order 2 gives 3200.  At most Window
// digits may lie between the first and last nonzero digits (inclusive).
func FromDigits(digits []int, order int, base uint) (Number, error) {
	n, err := Zero(base)
	if err != nil {
		return n, err
	}
	//
	for i, d := range digits {
		if d < 0 || d >= int(base) {
			return Number{}, newError(MalformedNumber, "digit %d at position %d is not a base-%d digit", d, i, base)
		}
	}
	// Identify the significant part of the sequence
	start, end := 0, len(digits)
	//
	for start < end && digits[start] == 0 {
		start++
	}
	//
	for end > start && digits[end-1] == 0 {
		end--
	}
	//
	if start == end {
		return n, nil
	}
	//
	if end-start > Window {
		return Number{}, newError(PrecisionOverflow, "digits have more than %d significant base-%d digits",
			Window, base)
	}
	//
	for i, d := range digits[start:end] {
		n.digits[i] = uint32(d)
	}
	//
	n.order = order
	//
	return n, nil
}

// Base returns the prime p of the field this number belongs to.
func (p Number) Base() uint {
	return uint(p.base)
}

// Order returns the valuation of this number, i.e. the largest n such that
// p^n divides it.  By convention, zero has order 0.
func (p Number) Order() int {
	return p.order
}

// IsZero checks whether this is the additive identity.
func (p Number) IsZero() bool {
	return p.digits.lowest() == Precision
}

// Digits returns the significant digits of this number, least significant
// first, starting from the coefficient of p^order.  Together with Order, this
// is suitable for reconstructing the number with FromDigits.
func (p Number) Digits() []uint {
	var ds []uint
	//
	for i := range p.digits.highest(Window) + 1 {
		ds = append(ds, uint(p.digits[i]))
	}
	//
	return ds
}

// Equals checks whether two numbers belong to the same field and agree on
// their order and significant digits.
func (p Number) Equals(other Number) bool {
	return p.base == other.base && p.order == other.order &&
		slices.Equal(p.digits[:Window], other.digits[:Window])
}

// Hash returns a hashcode consistent with Equals.
func (p Number) Hash() uint64 {
	// FNV1a hash implementation
	hash := offset64
	//
	for _, d := range p.digits[:Window] {
		hash = (hash ^ uint64(d)) * prime64
	}
	//
	hash = (hash ^ uint64(int64(p.order))) * prime64
	//
	return (hash ^ uint64(p.base)) * prime64
}
