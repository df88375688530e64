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
package bexp_test

import (
	"fmt"
	"testing"

	"github.com/ltl2aig/ltl2aig/pkg/util/source/bexp"
)

// strTerm is a minimal Term[string] used to check the parser's shape without
// pulling in the circuit package.
type strTerm struct{}

func (strTerm) Variable(name string) string       { return name }
func (strTerm) Not(t string) string                { return "!" + t }
func (strTerm) And(l, r string) string             { return fmt.Sprintf("(%s & %s)", l, r) }
func (strTerm) Or(l, r string) string              { return fmt.Sprintf("(%s | %s)", l, r) }
func (strTerm) True() string                       { return "1" }
func (strTerm) False() string                      { return "0" }

func TestParsePrecedenceAndAssociativity(t *testing.T) {
	got, errs := bexp.Parse("a && b || c", strTerm{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if want := "((a & b) | c)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseNegationBindsTighter(t *testing.T) {
	got, errs := bexp.Parse("!a && b", strTerm{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if want := "(!a & b)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseParentheses(t *testing.T) {
	got, errs := bexp.Parse("a && (b || c)", strTerm{})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if want := "(a & (b | c))"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseMalformedInputReportsError(t *testing.T) {
	if _, errs := bexp.Parse("a &&", strTerm{}); len(errs) == 0 {
		t.Fatal("expected a syntax error for a dangling operator")
	}
}

func TestParseUnknownCharacterReportsError(t *testing.T) {
	if _, errs := bexp.Parse("a @ b", strTerm{}); len(errs) == 0 {
		t.Fatal("expected a syntax error for an unrecognised character")
	}
}
