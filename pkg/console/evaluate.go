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
	"io"

	"github.com/consensys/go-padic/pkg/padic"
	"github.com/consensys/go-padic/pkg/util"
	"github.com/markkurossi/tabulate"
	log "github.com/sirupsen/logrus"
)

// Results holds the outcome of applying the four arithmetic operations to a
// pair of operands A and B.  The quotient is absent when B is zero.
type Results struct {
	Sum        padic.Number
	Difference padic.Number
	Product    padic.Number
	Quotient   util.Option[padic.Number]
}

// Evaluate computes A+B, A-B, A*B and A/B.
func Evaluate(a, b padic.Number) (Results, error) {
	var (
		results Results
		err     error
		stats   = util.NewPerfStats()
	)
	//
	log.Debugf("evaluating A=%s, B=%s (base %d)", a, b, a.Base())
	//
	if results.Sum, err = a.Add(b); err != nil {
		return results, err
	} else if results.Difference, err = a.Subtract(b); err != nil {
		return results, err
	} else if results.Product, err = a.Multiply(b); err != nil {
		return results, err
	}
	//
	if b.IsZero() {
		results.Quotient = util.None[padic.Number]()
	} else if q, err := a.Divide(b); err != nil {
		return results, err
	} else {
		results.Quotient = util.Some(q)
	}
	//
	stats.Log("evaluation")
	//
	return results, nil
}

// Format determines how a results table is laid out.
type Format struct {
	// Border style of the table.
	Style tabulate.Style
	// Number of terms of each result's power series to show, or 0 for none.
	Series uint
}

// WriteTable writes a bordered table of results, one row per operation.
func WriteTable(w io.Writer, results Results, format Format) {
	tab := tabulate.New(format.Style)
	tab.Header("Operation").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.MR)
	//
	if format.Series > 0 {
		tab.Header("Series").SetAlign(tabulate.ML)
	}
	//
	rows := []struct {
		label string
		value util.Option[padic.Number]
	}{
		{"A + B", util.Some(results.Sum)},
		{"A - B", util.Some(results.Difference)},
		{"A * B", util.Some(results.Product)},
		{"A / B", results.Quotient},
	}
	//
	for _, r := range rows {
		row := tab.Row()
		row.Column(r.label)
		row.Column(r.value.Render(padic.Number.String, "N/A"))
		//
		if format.Series > 0 {
			row.Column(r.value.Render(func(n padic.Number) string {
				return n.Series(format.Series)
			}, "N/A"))
		}
	}
	//
	tab.Print(w)
}
