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
package bit

import "math/bits"

// Set is a set of small unsigned integers, held as a bitmap.  Membership is a
// single word lookup, which makes it suitable for precomputed tables such as
// sieves.
type Set struct {
	words []uint64
}

// NewFullSet creates a Set containing every value in [0, size).  Values can
// then be removed, but never added.
func NewFullSet(size uint) *Set {
	set := &Set{make([]uint64, (size+63)/64)}
	//
	for i := range set.words {
		set.words[i] = ^uint64(0)
	}
	// Clear bits beyond the requested size
	if rem := size % 64; rem != 0 {
		set.words[len(set.words)-1] = (uint64(1) << rem) - 1
	}
	//
	return set
}

// locate returns the word holding a given value, and the mask selecting it
// within that word.
func locate(val uint) (uint, uint64) {
	return val / 64, uint64(1) << (val % 64)
}

// Remove a given value from this set.  Values beyond the end are already
// absent.
func (p *Set) Remove(val uint) {
	if word, mask := locate(val); word < uint(len(p.words)) {
		p.words[word] &^= mask
	}
}

// Contains checks whether a given value is contained, or not.
func (p *Set) Contains(val uint) bool {
	word, mask := locate(val)
	//
	return word < uint(len(p.words)) && p.words[word]&mask != 0
}

// Count returns the number of values in this set.
func (p *Set) Count() uint {
	count := uint(0)
	//
	for _, word := range p.words {
		count += uint(bits.OnesCount64(word))
	}
	//
	return count
}
