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

// buffer holds the digits of a number, least significant first.  It is an
// array rather than a slice so that assigning a buffer always copies it, which
// lets arithmetic scribble over its operands' digits without aliasing them.
type buffer [Precision]uint32

// lowest returns the index of the first nonzero digit, or Precision if every
// digit is zero.
func (b *buffer) lowest() int {
	for i, d := range b {
		if d != 0 {
			return i
		}
	}
	//
	return Precision
}

// highest returns the index of the last nonzero digit amongst the first n
// digits, or -1 if all of them are zero.
func (b *buffer) highest(n int) int {
	for i := n - 1; i >= 0; i-- {
		if b[i] != 0 {
			return i
		}
	}
	//
	return -1
}

// shiftDown discards the n lowest digits, moving the remainder down and
// filling the top with zeros.  This divides by base^n.
func (b *buffer) shiftDown(n int) {
	if n <= 0 {
		return
	}
	//
	n = min(n, Precision)
	copy(b[:], b[n:])
	clear(b[Precision-n:])
}

// shiftUp moves every digit up by n positions, losing the n highest digits and
// filling the bottom with zeros.  This multiplies by base^n.
func (b *buffer) shiftUp(n int) {
	if n <= 0 {
		return
	}
	//
	n = min(n, Precision)
	copy(b[n:], b[:Precision-n])
	clear(b[:n])
}

// times returns this buffer multiplied by a single digit m.
func (b *buffer) times(m uint32, base uint32) buffer {
	var (
		result buffer
		carry  uint64
	)
	//
	for i, d := range b {
		next := uint64(d)*uint64(m) + carry
		carry = next / uint64(base)
		result[i] = uint32(next % uint64(base))
	}
	//
	return result
}

// addAt adds x, shifted up by offset digits, into this buffer.
func (b *buffer) addAt(x *buffer, offset int, base uint32) {
	var carry uint32
	//
	for i := offset; i < Precision; i++ {
		sum := b[i] + x[i-offset] + carry
		carry = sum / base
		b[i] = sum % base
	}
}

// subtractAt subtracts x, shifted up by offset digits, from this buffer.
func (b *buffer) subtractAt(x *buffer, offset int, base uint32) {
	var borrow uint32
	//
	for i := offset; i < Precision; i++ {
		s := x[i-offset] + borrow
		//
		if b[i] < s {
			b[i] = b[i] + base - s
			borrow = 1
		} else {
			b[i] -= s
			borrow = 0
		}
	}
}

// normalise shifts out the low-order zeros of b, given the order of digit 0
// and the number of low-order digits which are known exactly.  It returns the
// order and accuracy of the shifted digits.  When every known digit is zero,
// b is cleared and the result is the zero number (order 0, full accuracy).
func normalise(b *buffer, order int, accuracy int) (int, int) {
	pos := b.lowest()
	//
	if pos >= accuracy {
		clear(b[:])
		return 0, Precision
	}
	//
	b.shiftDown(pos)
	//
	return order + pos, accuracy - pos
}
