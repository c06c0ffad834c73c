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
	"sync"

	"github.com/consensys/go-padic/pkg/util/collection/bit"
	log "github.com/sirupsen/logrus"
)

// PrimeLimit is the (exclusive) upper bound on bases.  Primality is decided by
// table lookup, hence bases at or above this limit cannot be certified.
const PrimeLimit = 1 << 16

// primes holds the sieve of Eratosthenes over [0, PrimeLimit).  It is built on
// first use and never written afterwards.
var primes = sync.OnceValue(func() *bit.Set {
	sieve := bit.NewFullSet(PrimeLimit)
	sieve.Remove(0)
	sieve.Remove(1)
	//
	for i := uint(2); i*i < PrimeLimit; i++ {
		if !sieve.Contains(i) {
			continue
		}
		// Strike out multiples, starting from i² since smaller ones have
		// already been struck out by smaller primes.
		for j := i * i; j < PrimeLimit; j += i {
			sieve.Remove(j)
		}
	}
	//
	log.Debugf("sieved %d primes below %d", sieve.Count(), PrimeLimit)
	//
	return sieve
})

// IsPrime reports whether n is a prime below PrimeLimit.
func IsPrime(n uint) bool {
	return n < PrimeLimit && primes().Contains(n)
}

// CheckPrime returns an InvalidBase error unless base can serve as the modulus
// of a p-adic field.
func CheckPrime(base uint) error {
	if base >= PrimeLimit {
		return newError(InvalidBase, "base %d is too large to certify as prime (must be less than %d)", base,
			PrimeLimit)
	} else if !IsPrime(base) {
		return newError(InvalidBase, "base %d is not prime", base)
	}
	//
	return nil
}
