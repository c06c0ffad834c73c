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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/consensys/go-padic/pkg/padic"
	log "github.com/sirupsen/logrus"
)

// Session is an interactive calculator which repeatedly reads a base and two
// operands, then prints the results of combining them.
type Session struct {
	in  *bufio.Scanner
	out io.Writer
	// Determines whether prompts are written before reading each line.
	prompt bool
	format Format
	// Lines scanned from the input, which is closed once it is exhausted.
	lines chan line
}

// line is a single line of input, or the error which prevented reading it.
type line struct {
	text string
	err  error
}

// NewSession constructs a session reading lines from in and writing prompts,
// diagnostics and results to out.
func NewSession(in io.Reader, out io.Writer, prompt bool, format Format) *Session {
	return &Session{bufio.NewScanner(in), out, prompt, format, nil}
}

// Run executes rounds until the input is exhausted or the context is
// cancelled.  An invalid base restarts the round, whilst an invalid operand is
// reported and asked for again.  Cancellation takes effect even whilst waiting
// for input, in which case the context's error is returned.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	// Dispatch go-routine
	s.lines = make(chan line)
	go s.scan(ctx)
	//
	for round := 1; ; round++ {
		err := s.round(ctx)
		//
		if errors.Is(err, io.EOF) {
			log.Debugf("input exhausted after %d round(s)", round)
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (s *Session) round(ctx context.Context) error {
	line, err := s.read(ctx, "Base = ")
	if err != nil {
		return err
	}
	//
	base, err := ParseBase(line)
	if err != nil {
		s.report(line, err)
		return nil
	}
	//
	a, err := s.operand(ctx, "A", base)
	if err != nil {
		return err
	}
	//
	b, err := s.operand(ctx, "B", base)
	if err != nil {
		return err
	}
	//
	results, err := Evaluate(a, b)
	if err != nil {
		s.report("", err)
		return nil
	}
	//
	WriteTable(s.out, results, s.format)
	//
	return nil
}

// operand reads the named operand, asking again until it is well formed.
func (s *Session) operand(ctx context.Context, name string, base uint) (padic.Number, error) {
	readOrder := func() (string, error) {
		return s.read(ctx, "Order = ")
	}
	//
	for {
		line, err := s.read(ctx, name+" = ")
		if err != nil {
			return padic.Number{}, err
		}
		//
		var perr *padic.Error
		//
		n, err := ParseOperand(line, base, readOrder)
		if err == nil {
			fmt.Fprintf(s.out, "Variable %s interpreted as %s\n", name, n)
			return n, nil
		} else if !errors.As(err, &perr) {
			// Failed reading the order, rather than a malformed operand.
			return n, err
		}
		//
		s.report(line, err)
	}
}

// scan feeds lines of input to the session until the input is exhausted, or
// the session ends.  A read which is already blocked when the session ends is
// abandoned, rather than waited for.
func (s *Session) scan(ctx context.Context) {
	defer close(s.lines)
	//
	for s.in.Scan() {
		select {
		case s.lines <- line{text: s.in.Text()}:
		case <-ctx.Done():
			return
		}
	}
	//
	if err := s.in.Err(); err != nil {
		select {
		case s.lines <- line{err: err}:
		case <-ctx.Done():
		}
	}
}

// read returns the next line of input, with surrounding whitespace removed.
func (s *Session) read(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	//
	if s.prompt {
		fmt.Fprint(s.out, prompt)
	}
	//
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case next, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		} else if next.err != nil {
			return "", next.err
		}
		//
		return strings.TrimSpace(next.text), nil
	}
}

// report writes an error message for some line of input.
func (s *Session) report(text string, err error) {
	ReportError(s.out, text, err)
}

// ReportError writes an error message, underlining the offending character
// when the error arose from parsing the given text.
func ReportError(w io.Writer, text string, err error) {
	var perr *padic.Error
	//
	fmt.Fprintf(w, "error: %v\n", err)
	//
	if errors.As(err, &perr) && perr.Index() >= 0 && perr.Index() < len(text) {
		fmt.Fprintf(w, "  %s\n", text)
		fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", perr.Index()))
	}
}
