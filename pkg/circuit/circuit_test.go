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

func TestHashConsingUniqueness(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)

	g1 := c.And(a, b)
	g2 := c.And(a, b)

	if g1 != g2 {
		t.Fatalf("expected identical tuples to hash-cons to the same node: %v != %v", g1, g2)
	}
}

func TestSignalIdempotent(t *testing.T) {
	c := circuit.New()

	if c.Signal(2) != c.Signal(2) {
		t.Fatal("expected repeated Signal(2) to return the same handle")
	}
}

func TestConstantFolding(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	tt := c.Constant(true)
	ff := c.Constant(false)

	if got := c.And(tt, a); got != a {
		t.Fatalf("AND(TRUE, h) should collapse to h, got %v", got)
	}

	if got := c.Or(ff, a); got != a {
		t.Fatalf("OR(FALSE, h) should collapse to h, got %v", got)
	}

	if got := c.And(a, c.Not(a)); got != ff {
		t.Fatalf("AND(h, NOT h) should be FALSE, got %v", got)
	}

	if got := c.Or(a, c.Not(a)); got != tt {
		t.Fatalf("OR(h, NOT h) should be TRUE, got %v", got)
	}
}

func TestDoubleNegation(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)
	g := c.And(a, b)

	if got := c.Not(c.Not(g)); got != g {
		t.Fatalf("NOT(NOT(h)) should equal h structurally, got %v want %v", got, g)
	}
}

func TestDeMorgan(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)

	lhs := c.Not(c.And(a, b))
	rhs := c.Or(c.Not(a), c.Not(b))

	if lhs != rhs {
		t.Fatalf("NOT(AND(a,b)) should equal OR(NOT a, NOT b), got %v != %v", lhs, rhs)
	}
}

func TestCanonicalization(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)

	g1 := c.And(a, b)
	g2 := c.And(a, b)

	if g1 != g2 {
		t.Fatal("building AND(a,b) twice should yield the same node index")
	}

	if got := c.And(a, c.Not(a)); got != c.Constant(false) {
		t.Fatal("AND(a, NOT a) should be constant FALSE (index 0)")
	}
}

func TestNegationInvariant(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)

	handles := []circuit.Handle{
		c.And(a, b),
		c.Or(a, b),
		c.Not(c.And(a, b)),
		c.Not(c.Or(a, b)),
		c.Not(a),
	}

	for _, h := range handles {
		if h.Negated() && !c.IsTerminal(h.Index()) {
			t.Fatalf("handle %v is negated yet points at a non-terminal (internal gate)", h)
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	c := circuit.New()
	a := c.Signal(2)
	b := c.Signal(4)
	g := c.And(a, b)
	h := c.Or(g, a)

	if g.Index() >= h.Index() {
		t.Fatalf("child index %d should be strictly less than parent index %d", g.Index(), h.Index())
	}
}

func TestReset(t *testing.T) {
	c := circuit.New()

	c.Signal(2)
	c.Signal(4)

	if c.Len() <= 2 {
		t.Fatal("expected circuit to have grown past the two reserved constants")
	}

	c.Reset()

	if c.Len() != 2 {
		t.Fatalf("expected Reset to discard everything but the two constants, got %d nodes", c.Len())
	}
}
