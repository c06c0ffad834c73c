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
	"unicode"
)

// FromString parses a number written in canonical form, i.e. as base-p digits
// with the most significant digit first and an optional radix point.  For
// example, in base 5 the string "12.3" denotes 1·5 + 2 + 3·5⁻¹.  Redundant
// leading and trailing zeros have no effect.  Since digits are single decimal
// characters, this is only permitted for bases up to MaxStringBase.
func FromString(text string, base uint) (Number, error) {
	if base > MaxStringBase {
		return Number{}, newError(UnsupportedBaseForString,
			"base %d numbers cannot be written in canonical form (use a fraction or a digit sequence)", base)
	}
	//
	n, err := Zero(base)
	if err != nil {
		return n, err
	}
	//
	var (
		start                 = len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
		value                 = strings.TrimSpace(text)
		intPart, fracPart, ok = strings.Cut(value, ".")
	)
	//
	if err := checkDigits(intPart, start, base); err != nil {
		return Number{}, err
	} else if err := checkDigits(fracPart, start+len(intPart)+1, base); err != nil {
		return Number{}, err
	} else if intPart == "" && fracPart == "" {
		if ok {
			return Number{}, newSyntaxError(start, "radix point without digits")
		}
		//
		return Number{}, newSyntaxError(start, "missing number")
	}
	// Padding zeros carry no information
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	//
	var (
		digits      = intPart + fracPart
		significant = strings.TrimLeft(strings.TrimRight(digits, "0"), "0")
		// Number of trailing zeros in the digits
		zeros = len(strings.TrimLeft(digits, "0")) - len(significant)
	)
	//
	if significant == "" {
		return n, nil
	} else if len(significant) > Window {
		return Number{}, newError(PrecisionOverflow, "%q has more than %d significant digits", value, Window)
	}
	//
	for i := range len(significant) {
		n.digits[i] = uint32(significant[len(significant)-1-i] - '0')
	}
	//
	n.order = zeros - len(fracPart)
	//
	return n, nil
}

// checkDigits checks every character of text is a digit in the given base,
// reporting the offset (relative to the untrimmed input) of the first which is
// not.
func checkDigits(text string, offset int, base uint) error {
	for i := range len(text) {
		c := text[i]
		//
		switch {
		case c == '.':
			return newSyntaxError(offset+i, "more than one radix point")
		case c < '0' || c > '9':
			return newSyntaxError(offset+i, "unexpected character %q", c)
		case uint(c-'0') >= base:
			return newSyntaxError(offset+i, "digit %c is not a base-%d digit", c, base)
		}
	}
	//
	return nil
}
