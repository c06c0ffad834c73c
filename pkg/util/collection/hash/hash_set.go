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
package hash

import (
	"fmt"
	"iter"
	"strings"
)

// Hasher is implemented by values which can be stored in a Set.  The hash must
// be consistent with equality: equal values have equal hashes, whilst unequal
// values may share a hash.
type Hasher[T any] interface {
	// Equals checks whether two values are equal.
	Equals(T) bool
	// Hash returns a hashcode for this value.
	Hash() uint64
}

// Set is a hash set for values whose equality is not Go's built-in ==, such as
// values with an in-memory representation richer than their identity.  Values
// sharing a hashcode are kept in the same bucket and told apart with Equals.
type Set[T Hasher[T]] struct {
	buckets map[uint64][]T
	// Number of distinct values stored
	size uint
}

// NewSet constructs an empty set with room for a given number of hashcodes.
func NewSet[T Hasher[T]](capacity uint) *Set[T] {
	return &Set[T]{make(map[uint64][]T, capacity), 0}
}

// Size returns the number of distinct values in this set.
func (p *Set[T]) Size() uint {
	return p.size
}

// Insert adds a value to this set, returning true if an equal value was
// already present (in which case the set is unchanged).
func (p *Set[T]) Insert(item T) bool {
	h := item.Hash()
	//
	if find(p.buckets[h], item) {
		return true
	}
	//
	p.buckets[h] = append(p.buckets[h], item)
	p.size++
	//
	return false
}

// Contains checks whether a value equal to the given one is in this set.
func (p *Set[T]) Contains(item T) bool {
	return find(p.buckets[item.Hash()], item)
}

// All iterates the values of this set, in no particular order.
func (p *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range p.buckets {
			for _, item := range bucket {
				if !yield(item) {
					return
				}
			}
		}
	}
}

func (p *Set[T]) String() string {
	var items []string
	//
	for item := range p.All() {
		items = append(items, fmt.Sprintf("%v", any(item)))
	}
	//
	return "{" + strings.Join(items, ",") + "}"
}

func find[T Hasher[T]](bucket []T, item T) bool {
	for _, other := range bucket {
		if item.Equals(other) {
			return true
		}
	}
	//
	return false
}
