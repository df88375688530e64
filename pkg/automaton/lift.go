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
package automaton

import (
	"fmt"

	"github.com/ltl2aig/ltl2aig/pkg/circuit"
	"github.com/ltl2aig/ltl2aig/pkg/edgelabel"
)

// Lifted is the result of lifting one NBA: one latch per (state, counter)
// pair, each holding its own next-state update function, plus the error net
// that fires once any state's saturated (k+1) counter is reached.
type Lifted struct {
	Latches []circuit.Latch
	Error   circuit.Handle
}

// Lift builds the latch-update functions and error net for nba, bounded by
// k Büchi visits. signals must map every input and output name appearing in
// nba's edge labels to its already-assigned AIG variable number (shared
// across every spec unit in compositional mode; see Allocator); alloc
// supplies fresh latch variables for this unit's (state, counter) pairs,
// continuing on from wherever it currently stands.
//
// The construction follows translate2aig directly:
//
//   - one latch per (state, counter) pair, counter ranging over 0..k+1;
//   - the initial state's zero-counter latch also fires when every latch is
//     off (the automaton's start condition);
//   - each edge u->v ORs "latch(u,i) AND label" into latch(v,j)'s update,
//     for every i, where j saturates at k+1 once an edge into a Büchi state
//     is taken;
//   - the error net is the disjunction of every state's saturated (k+1)
//     counter latch.
func Lift(c *circuit.Circuit, signals map[string]uint32, k uint, nba NBA, alloc *Allocator) (Lifted, error) {
	type coord struct {
		state   State
		counter uint
	}

	var (
		stateLatch = make(map[coord]uint32)
		nextFn     = make(map[uint32]circuit.Handle)
		allVars    []uint32
	)

	for _, s := range nba.States {
		for i := uint(0); i <= k+1; i++ {
			v := alloc.Next()
			stateLatch[coord{s, i}] = v
			nextFn[v] = c.Constant(false)
			allVars = append(allVars, v)
		}
	}

	initVar, ok := stateLatch[coord{nba.Initial, 0}]
	if !ok {
		return Lifted{}, fmt.Errorf("automaton's declared initial state %q is not among its states", nba.Initial)
	}

	// allOff fires on the very first step, before any state has been
	// entered: every latch reads as off.
	allOff := c.Constant(true)
	for _, v := range allVars {
		allOff = c.And(allOff, c.Not(c.Signal(v)))
	}

	nextFn[initVar] = c.Or(nextFn[initVar], allOff)

	for _, e := range nba.Edges {
		label, err := edgelabel.Compile(c, e.Label, signals)
		if err != nil {
			return Lifted{}, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}

		for i := uint(0); i <= k+1; i++ {
			j := i
			if nba.Accepting[e.To] {
				j = min(i+1, k+1)
			}

			uVar, ok := stateLatch[coord{e.From, i}]
			if !ok {
				return Lifted{}, fmt.Errorf("edge references unknown source state %q", e.From)
			}

			vVar, ok := stateLatch[coord{e.To, j}]
			if !ok {
				return Lifted{}, fmt.Errorf("edge references unknown target state %q", e.To)
			}

			term := c.And(c.Signal(uVar), label)
			nextFn[vVar] = c.Or(nextFn[vVar], term)
		}
	}

	errorNet := c.Constant(false)
	for _, s := range nba.States {
		errorNet = c.Or(errorNet, c.Signal(stateLatch[coord{s, k + 1}]))
	}

	latches := make([]circuit.Latch, len(allVars))
	for i, v := range allVars {
		latches[i] = circuit.Latch{Var: v, Next: nextFn[v]}
	}

	return Lifted{Latches: latches, Error: errorNet}, nil
}
