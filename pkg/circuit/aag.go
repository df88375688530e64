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
package circuit

import (
	"bufio"
	"fmt"
	"io"
	"slices"
)

// Latch is one latch of the emitted game: its own (even) AIG variable number
// and the handle computing its next-state value.
type Latch struct {
	Var  uint32
	Next Handle
}

// Signal names an AIG input or output, paired with the variable number
// already assigned to it by the caller (see automaton.Allocator).
type Signal struct {
	Name string
	Var  uint32
}

// WriteAAG serialises the sub-circuit reachable from the given latches and
// error net as ASCII AIGER (the "aag" format), with a single primary output.
// Every OR gate is emitted as its AND dual with both fan-ins and the
// gate's own output complemented -- the De Morgan conversion that lets AIGER
// restrict itself to AND gates with edge-level complement bits.
func (c *Circuit) WriteAAG(w io.Writer, inputs, outputs []Signal, latches []Latch, errorNet Handle) error {
	var (
		bw      = bufio.NewWriter(w)
		nSig    = uint32(len(inputs) + len(outputs))
		nLatch  = uint32(len(latches))
		mask    = map[uint32]bool{}
		sorted  = slices.Clone(latches)
		gateVar = make(map[uint32]uint32)
	)

	slices.SortFunc(sorted, func(a, b Latch) int { return int(a.Var) - int(b.Var) })

	// Roots from which the reachable gate set is computed: every latch's
	// update function, plus the error net.
	roots := make([]Handle, 0, len(latches)+1)
	for _, l := range latches {
		roots = append(roots, l.Next)
	}

	roots = append(roots, errorNet)

	gates := c.reachableGates(roots, mask)
	mVars := uint32(len(gates))

	// Header.
	if _, err := fmt.Fprintf(bw, "aag %d %d %d 1 %d\n", mVars+nSig+nLatch, nSig, nLatch, mVars); err != nil {
		return err
	}

	// Inputs (controllable and uncontrollable alike share the input role in
	// AIGER; only the symbol table distinguishes them).
	for _, s := range inputs {
		if _, err := fmt.Fprintf(bw, "%d\n", s.Var); err != nil {
			return err
		}
	}

	for _, s := range outputs {
		if _, err := fmt.Fprintf(bw, "%d\n", s.Var); err != nil {
			return err
		}
	}

	// Number gates in table order, immediately after inputs and latches.
	cur := 2 * (nSig + nLatch + 1)
	for _, g := range gates {
		gateVar[g] = cur
		cur += 2
	}

	varOf := func(index uint32) uint32 {
		switch index {
		case FalseIndex:
			return 0
		case TrueIndex:
			return 1
		}

		if c.IsTerminal(index) {
			return c.SignalOf(index)
		}

		return gateVar[index]
	}

	literal := func(h Handle) uint32 {
		v := varOf(h.index)
		if h.neg != c.IsOr(h) {
			return v ^ 1
		}

		return v
	}

	// Latches: "l next".
	for _, l := range sorted {
		if _, err := fmt.Fprintf(bw, "%d %d\n", l.Var, literal(l.Next)); err != nil {
			return err
		}
	}

	// Error (the single primary output).
	if _, err := fmt.Fprintf(bw, "%d\n", literal(errorNet)); err != nil {
		return err
	}

	// Gates, De Morgan-converted to AND-only.
	for _, g := range gates {
		n := c.nodes[g]
		localNeg := n.op == OpOr

		left := literal(Handle{n.left, n.lNeg})
		if localNeg {
			left ^= 1
		}

		right := literal(Handle{n.right, n.rNeg})
		if localNeg {
			right ^= 1
		}

		if _, err := fmt.Fprintf(bw, "%d %d %d\n", gateVar[g], left, right); err != nil {
			return err
		}
	}

	// Symbol table.
	cnt := 0

	for _, s := range inputs {
		if _, err := fmt.Fprintf(bw, "i%d %s\n", cnt, s.Name); err != nil {
			return err
		}

		cnt++
	}

	for _, s := range outputs {
		if _, err := fmt.Fprintf(bw, "i%d controllable_%s\n", cnt, s.Name); err != nil {
			return err
		}

		cnt++
	}

	for i := range sorted {
		if _, err := fmt.Fprintf(bw, "l%d latch%d\n", i, i); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "o0 error\n"); err != nil {
		return err
	}

	return bw.Flush()
}

// reachableGates returns every non-terminal gate reachable from roots, in
// table order (a valid topological order: child before parent), excluding
// anything in mask.
func (c *Circuit) reachableGates(roots []Handle, mask map[uint32]bool) []uint32 {
	seen := make(map[uint32]bool)

	var all []uint32

	for _, r := range roots {
		for _, idx := range c.Depends(r, mask) {
			if !c.IsTerminal(idx) && !seen[idx] {
				seen[idx] = true

				all = append(all, idx)
			}
		}
	}

	slices.Sort(all)

	return all
}
