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

// Package edgelabel compiles the textual guard on a single transition of an
// automaton produced by ltl2ba -- a disjunction of conjunctions of possibly
// negated input/output names, such as "a && !b || (c && d)", or the trivial
// label "1" -- directly into a circuit.Handle.
package edgelabel

import (
	"fmt"

	"github.com/ltl2aig/ltl2aig/pkg/circuit"
	"github.com/ltl2aig/ltl2aig/pkg/util/source/bexp"
)

// Compile parses label and builds the corresponding circuit, resolving every
// named literal through signals (which must already hold an AIG variable
// number for every input and output name appearing in the automaton). The
// two reserved names "T" and "F" denote the constants true and false, as
// they do in ltl2ba's own output, rather than being looked up in signals.
func Compile(c *circuit.Circuit, label string, signals map[string]uint32) (circuit.Handle, error) {
	builder := &circuitBuilder{c, signals, nil}

	h, errs := bexp.Parse(label, builder)
	if len(errs) != 0 {
		return circuit.Handle{}, fmt.Errorf("malformed edge label %q: %s", label, errs[0].Error())
	}

	if builder.err != nil {
		return circuit.Handle{}, builder.err
	}

	return h, nil
}

// circuitBuilder implements bexp.Term[circuit.Handle], turning parse events
// directly into circuit operations. A lookup failure is latched in err
// rather than propagated through the Term interface, which has no room for
// it; Compile checks err once parsing completes.
type circuitBuilder struct {
	c       *circuit.Circuit
	signals map[string]uint32
	err     error
}

func (b *circuitBuilder) Variable(name string) circuit.Handle {
	switch name {
	case "T":
		return b.c.Constant(true)
	case "F":
		return b.c.Constant(false)
	}

	v, ok := b.signals[name]
	if !ok {
		if b.err == nil {
			b.err = fmt.Errorf("edge label references unknown signal %q", name)
		}

		return b.c.Constant(false)
	}

	return b.c.Signal(v)
}

func (b *circuitBuilder) Not(h circuit.Handle) circuit.Handle    { return b.c.Not(h) }
func (b *circuitBuilder) And(l, r circuit.Handle) circuit.Handle { return b.c.And(l, r) }
func (b *circuitBuilder) Or(l, r circuit.Handle) circuit.Handle  { return b.c.Or(l, r) }
func (b *circuitBuilder) True() circuit.Handle                   { return b.c.Constant(true) }
func (b *circuitBuilder) False() circuit.Handle                  { return b.c.Constant(false) }

var _ bexp.Term[circuit.Handle] = (*circuitBuilder)(nil)
