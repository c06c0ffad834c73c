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

// Negate returns the additive inverse of this number.  This generalises two's
// complement negation: the lowest digit d becomes p-d and every digit above it
// becomes p-1-d.
func (p Number) Negate() Number {
	if p.IsZero() {
		return p
	}
	//
	result := Number{base: p.base, order: p.order, accuracy: p.accuracy}
	result.digits[0] = p.base - p.digits[0]
	//
	for i := 1; i < Precision; i++ {
		result.digits[i] = p.base - 1 - p.digits[i]
	}
	//
	return result
}

// Add returns the sum of this number and other.
func (p Number) Add(other Number) (Number, error) {
	if err := p.compatible(other); err != nil {
		return Number{}, err
	} else if p.IsZero() {
		return other, nil
	} else if other.IsZero() {
		return p, nil
	}
	//
	var (
		lhs, rhs, accuracy, finite = align(p, other)
		carry                      uint32
	)
	// Ripple carry
	for i := range lhs {
		sum := lhs[i] + rhs[i] + carry
		carry = sum / p.base
		lhs[i] = sum % p.base
	}
	// A carry out of the buffer is lost
	return p.result(lhs, min(p.order, other.order), accuracy, finite && carry == 0)
}

// Subtract returns the difference of this number and other.
func (p Number) Subtract(other Number) (Number, error) {
	if err := p.compatible(other); err != nil {
		return Number{}, err
	} else if other.IsZero() {
		return p, nil
	} else if p.IsZero() {
		return other.Negate(), nil
	}
	//
	lhs, rhs, accuracy, finite := align(p, other)
	// Ripple borrow.  The minuend is a local copy, hence borrowing can
	// decrement its digits in place.
	for i := range lhs {
		if lhs[i] < rhs[i] {
			j := i + 1
			//
			for ; j < Precision && lhs[j] == 0; j++ {
				lhs[j] = p.base - 1
			}
			// Borrowing beyond the buffer gives a negative result
			if j < Precision {
				lhs[j]--
			} else {
				finite = false
			}
			//
			lhs[i] += p.base
		}
		//
		lhs[i] -= rhs[i]
	}
	//
	return p.result(lhs, min(p.order, other.order), accuracy, finite)
}

// Multiply returns the product of this number and other, computed by long
// multiplication over the full digit buffers.
func (p Number) Multiply(other Number) (Number, error) {
	if err := p.compatible(other); err != nil {
		return Number{}, err
	} else if p.IsZero() || other.IsZero() {
		return zero(p.base), nil
	}
	//
	var (
		acc buffer
		// The product of finite numbers is finite if it cannot outgrow the
		// buffer.
		finite = p.finite && other.finite &&
			p.digits.highest(Precision)+other.digits.highest(Precision)+1 < Precision
	)
	//
	for i, m := range other.digits {
		if m != 0 {
			partial := p.digits.times(m, p.base)
			acc.addAt(&partial, i, p.base)
		}
	}
	//
	return p.result(acc, p.order+other.order, min(p.accuracy, other.accuracy), finite)
}

// Divide returns the quotient of this number by divisor.  The quotient is
// built one digit at a time: each digit x solves divisor₀·x ≡ r (mod p) for
// the lowest outstanding digit r of the running remainder, after which
// x·divisor is subtracted at that position.  Since p is prime and divisor₀ is
// nonzero, such an x always exists and is unique.
func (p Number) Divide(divisor Number) (Number, error) {
	if err := p.compatible(divisor); err != nil {
		return Number{}, err
	} else if divisor.IsZero() {
		return Number{}, newError(DivisionByZero, "division of %v by zero", p)
	} else if p.IsZero() {
		return p, nil
	}
	//
	var (
		rem      = p.digits
		den      = divisor.digits
		quotient buffer
	)
	//
	for i := range quotient {
		x, ok := findMultiplier(rem[i], den[0], p.base)
		if !ok {
			return Number{}, newError(ArithmeticInvariant, "no x satisfies %d·x ≡ %d (mod %d)", den[0], rem[i],
				p.base)
		}
		//
		if x != 0 {
			partial := den.times(x, p.base)
			rem.subtractAt(&partial, i, p.base)
		}
		//
		quotient[i] = x
	}
	//
	return p.result(quotient, p.order-divisor.order, min(p.accuracy, divisor.accuracy), false)
}

// result constructs a number in the same field as p from the digits of an
// arithmetic result, given the order of digit 0, the number of low-order
// digits which are known exactly and whether the digits above the buffer are
// all zero.  This fails if fewer than Window digits remain known once
// low-order zeros are shifted out, since the number's significant digits
// could not then be trusted.
func (p Number) result(digits buffer, order int, accuracy int, finite bool) (Number, error) {
	order, accuracy = normalise(&digits, order, accuracy)
	//
	switch {
	case finite || digits.lowest() == Precision:
		return Number{p.base, order, Precision, true, digits}, nil
	case accuracy < Window:
		return Number{}, newError(PrecisionOverflow, "only %d of %d significant digits survive cancellation",
			accuracy, Window)
	default:
		return Number{p.base, order, accuracy, false, digits}, nil
	}
}

// compatible checks whether two numbers can be combined.
func (p Number) compatible(other Number) error {
	if err := CheckPrime(uint(p.base)); err != nil {
		return err
	} else if p.base != other.base {
		return newError(BaseMismatch, "cannot combine %d-adic and %d-adic numbers", p.base, other.base)
	}
	//
	return nil
}

// align returns copies of the digits of two nonzero numbers, shifted so that
// digit 0 of both sits at the smaller of their orders.  This also returns how
// many low-order digits of both copies are known exactly, and whether both
// remain finite.
func align(lhs, rhs Number) (buffer, buffer, int, bool) {
	var (
		l, r   = lhs.digits, rhs.digits
		lo     = min(lhs.order, rhs.order)
		ls, rs = lhs.order - lo, rhs.order - lo
		lk, lf = lhs.known(ls)
		rk, rf = rhs.known(rs)
	)
	//
	l.shiftUp(ls)
	r.shiftUp(rs)
	//
	return l, r, min(lk, rk), lf && rf
}

// known returns how many low-order digits of this number are known exactly
// once shifted up by n digits, and whether it then remains finite.  Shifting
// preserves the known digits, except those pushed out of the buffer.
func (p Number) known(n int) (int, bool) {
	if p.finite && p.digits.highest(Precision)+n < Precision {
		return Precision, true
	}
	//
	return min(Precision, n+p.accuracy), false
}

// findMultiplier searches exhaustively for x in [0, base) such that
// multiplier·x ≡ target (mod base).
func findMultiplier(target, multiplier, base uint32) (uint32, bool) {
	for x := uint32(0); x < base; x++ {
		if (uint64(multiplier)*uint64(x))%uint64(base) == uint64(target) {
			return x, true
		}
	}
	//
	return 0, false
}
