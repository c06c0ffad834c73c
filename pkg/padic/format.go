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
	"fmt"
	"strconv"
	"strings"

	"github.com/markkurossi/text/superscript"
)

// String renders this number in canonical form, most significant digit
// first.  Digits are separated by underscores for bases above MaxStringBase,
// since they may then need more than one decimal character.
func (p Number) String() string {
	var (
		// Highest power of the base with a significant digit
		hi    = p.digits.highest(Window) + p.order
		whole []string
		parts []string
		sep   string
	)
	//
	if p.base > MaxStringBase {
		sep = "_"
	}
	//
	for k := hi; k >= 0; k-- {
		whole = append(whole, p.digit(k))
	}
	//
	if len(whole) == 0 {
		whole = append(whole, "0")
	}
	//
	for k := -1; k >= p.order; k-- {
		parts = append(parts, p.digit(k))
	}
	//
	if len(parts) == 0 {
		return strings.Join(whole, sep)
	}
	//
	return strings.Join(whole, sep) + "." + strings.Join(parts, sep)
}

// digit renders the coefficient of base^k.  Coefficients outside the window
// of significant digits are zero.
func (p Number) digit(k int) string {
	i := k - p.order
	//
	if i < 0 || i >= Window {
		return "0"
	}
	//
	return strconv.FormatUint(uint64(p.digits[i]), 10)
}

// Series renders the first (at most) n nonzero terms of this number as a
// power series in the base, e.g. "3·5⁻¹ + 2 + 4·5² + …".
func (p Number) Series(n uint) string {
	var (
		builder strings.Builder
		count   uint
	)
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := range Window {
		d := p.digits[i]
		//
		if d == 0 {
			continue
		} else if count > 0 {
			builder.WriteString(" + ")
		}
		//
		if count == n {
			builder.WriteString("…")
			break
		}
		//
		builder.WriteString(term(d, p.base, i+p.order))
		//
		count++
	}
	//
	return builder.String()
}

// term renders a single term d·p^k of a power series.
func term(d uint32, base uint32, k int) string {
	var power string
	//
	switch {
	case k == 0:
		return fmt.Sprintf("%d", d)
	case k == 1:
		power = fmt.Sprintf("%d", base)
	case k < 0:
		power = fmt.Sprintf("%d⁻%s", base, superscript.Itoa(-k))
	default:
		power = fmt.Sprintf("%d%s", base, superscript.Itoa(k))
	}
	//
	if d == 1 {
		return power
	}
	//
	return fmt.Sprintf("%d·%s", d, power)
}
