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
)

// ErrorKind classifies the ways in which constructing or combining p-adic
// numbers can fail.
type ErrorKind uint8

const (
	// InvalidBase signals a base which is not a prime below PrimeLimit.
	InvalidBase ErrorKind = iota
	// BaseMismatch signals an operation on numbers from different fields.
	BaseMismatch
	// DivisionByZero signals a zero divisor or a zero denominator.
	DivisionByZero
	// MalformedNumber signals textual or digit input which does not describe
	// a number in the given base.
	MalformedNumber
	// UnsupportedBaseForString signals a canonical string in a base whose
	// digits cannot be written as single decimal characters.
	UnsupportedBaseForString
	// PrecisionOverflow signals a value needing more than Precision digits.
	PrecisionOverflow
	// ArithmeticInvariant signals an internal failure of the division
	// algorithm.  This is unreachable for prime bases.
	ArithmeticInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidBase:
		return "invalid base"
	case BaseMismatch:
		return "base mismatch"
	case DivisionByZero:
		return "division by zero"
	case MalformedNumber:
		return "malformed number"
	case UnsupportedBaseForString:
		return "unsupported base for string"
	case PrecisionOverflow:
		return "precision overflow"
	case ArithmeticInvariant:
		return "arithmetic invariant"
	default:
		return fmt.Sprintf("error kind %d", uint8(k))
	}
}

// Sentinel errors, one per kind.  Any error returned from this package matches
// exactly one of these via errors.Is.
var (
	ErrInvalidBase              = &Error{InvalidBase, -1, InvalidBase.String()}
	ErrBaseMismatch             = &Error{BaseMismatch, -1, BaseMismatch.String()}
	ErrDivisionByZero           = &Error{DivisionByZero, -1, DivisionByZero.String()}
	ErrMalformedNumber          = &Error{MalformedNumber, -1, MalformedNumber.String()}
	ErrUnsupportedBaseForString = &Error{UnsupportedBaseForString, -1, UnsupportedBaseForString.String()}
	ErrPrecisionOverflow        = &Error{PrecisionOverflow, -1, PrecisionOverflow.String()}
	ErrArithmeticInvariant      = &Error{ArithmeticInvariant, -1, ArithmeticInvariant.String()}
)

// Error is the error type returned by every operation in this package.
type Error struct {
	kind ErrorKind
	// Byte offset into the text being parsed where the error arose, or -1 when
	// the error is not associated with any text.
	index int
	// Error message being reported
	msg string
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{kind, -1, fmt.Sprintf(format, args...)}
}

func newSyntaxError(index int, format string, args ...any) *Error {
	return &Error{MalformedNumber, index, fmt.Sprintf(format, args...)}
}

// Kind returns the kind of this error.
func (p *Error) Kind() ErrorKind {
	return p.kind
}

// Index returns the byte offset of the offending character for errors arising
// from parsing text, or -1 otherwise.
func (p *Error) Index() int {
	return p.index
}

// Message returns the message to be reported.
func (p *Error) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *Error) Error() string {
	return p.msg
}

// Is matches any error of the same kind, which allows callers to test against
// the sentinel errors.
func (p *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return t.kind == p.kind
	}

	return false
}
