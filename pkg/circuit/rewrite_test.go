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
package circuit_test

import (
	"testing"

	"github.com/ltl2aig/ltl2aig/pkg/circuit"
)

func TestPushNegationsIdempotent(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)
	g := c.Not(c.And(a, b))

	once := c.PushNegations(g)
	twice := c.PushNegations(once)

	if once != twice {
		t.Fatalf("push_neg should be idempotent: %v != %v", once, twice)
	}
}

func TestPushNegationsOnlyNegatesLiterals(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)
	d := c.Signal(6)

	g := c.Not(c.And(c.Or(a, b), d))
	pushed := c.PushNegations(g)

	if pushed.Negated() && !c.IsTerminal(pushed.Index()) {
		t.Fatal("pushed result is negated yet non-terminal")
	}
}

func TestPushNegationsDeMorganFlip(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)

	// NOT(a AND b) should push to (NOT a) OR (NOT b), which is already in
	// the same structural form produced directly via De Morgan.
	pushed := c.PushNegations(c.Not(c.And(a, b)))
	direct := c.Or(c.Not(a), c.Not(b))

	if pushed != direct {
		t.Fatalf("push_neg(NOT(a AND b)) = %v, want %v", pushed, direct)
	}
}

func TestRemoveNegationsSwapsOnlyTargeted(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)
	swap := map[uint32]uint32{2: 100}

	g := c.And(c.Not(a), c.Not(b))
	removed := c.RemoveNegations(g, swap)

	// a's negation should have been eliminated via the fresh swapped
	// literal; b, outside dom(swap), should retain its negation.
	want := c.And(c.Signal(100), c.Not(b))

	if removed != want {
		t.Fatalf("remove_neg result = %v, want %v", removed, want)
	}
}

func TestRemoveNegationsLeavesPositiveLiteralsAlone(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	swap := map[uint32]uint32{2: 100}

	if got := c.RemoveNegations(a, swap); got != a {
		t.Fatalf("positive literal should be unaffected by swap, got %v", got)
	}
}
