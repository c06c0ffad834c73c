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
package console

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-padic/pkg/padic"
)

// ParseBase reads the prime base of a session.  This must be written as a
// plain decimal integer.
func ParseBase(text string) (uint, error) {
	text = strings.TrimSpace(text)
	//
	if strings.ContainsAny(text, ".,") {
		return 0, fmt.Errorf("%w: base must be an integer", padic.ErrInvalidBase)
	}
	//
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", padic.ErrInvalidBase, text)
	} else if err := padic.CheckPrime(uint(n)); err != nil {
		return 0, err
	}
	//
	return uint(n), nil
}

// ParseOperand reads a number in one of three notations:
//
//   - a fraction "n/d" of decimal integers, e.g. "-3/10";
//   - a comma separated digit sequence, least significant digit first, whose
//     order is then obtained from readOrder;
//   - a canonical string, e.g. "102.31".
//
// Canonical strings are only meaningful for small bases, so above
// padic.MaxStringBase a plain decimal integer is accepted in their place.
func ParseOperand(text string, base uint, readOrder func() (string, error)) (padic.Number, error) {
	text = strings.TrimSpace(text)
	//
	switch {
	case strings.Contains(text, "/"):
		lhs, rhs, _ := strings.Cut(text, "/")
		//
		num, err := parseInteger(lhs)
		if err != nil {
			return padic.Number{}, err
		}
		//
		den, err := parseInteger(rhs)
		if err != nil {
			return padic.Number{}, err
		}
		//
		return padic.FromRational(num, den, base)
	case strings.Contains(text, ","):
		digits, err := parseDigits(text)
		if err != nil {
			return padic.Number{}, err
		}
		//
		line, err := readOrder()
		if err != nil {
			return padic.Number{}, err
		}
		//
		order, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return padic.Number{}, fmt.Errorf("%w: order %q is not an integer", padic.ErrMalformedNumber, line)
		}
		//
		return padic.FromDigits(digits, order, base)
	case base > padic.MaxStringBase:
		if value, err := parseInteger(text); err == nil {
			return padic.FromInteger(value, base)
		}
	}
	//
	return padic.FromString(text, base)
}

func parseInteger(text string) (*big.Int, error) {
	text = strings.TrimSpace(text)
	//
	if value, ok := new(big.Int).SetString(text, 10); ok {
		return value, nil
	}
	//
	return nil, fmt.Errorf("%w: %q is not an integer", padic.ErrMalformedNumber, text)
}

func parseDigits(text string) ([]int, error) {
	var (
		fields = strings.Split(text, ",")
		digits = make([]int, len(fields))
	)
	//
	for i, field := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%w: digit %q is not an integer", padic.ErrMalformedNumber, field)
		}
		//
		digits[i] = d
	}
	//
	return digits, nil
}
