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
	"github.com/bits-and-blooms/bitset"

	"github.com/ltl2aig/ltl2aig/pkg/util/collection/stack"
)

// Depends returns the post-order list of transitive gate indices reachable
// from h, excluding the two constants and any index present in mask.
// Idempotent; used by consumers which need to project a sub-circuit (e.g.
// the AIG writer, to iterate gates in a valid topological order).
//
// Traversal uses an explicit work stack rather than recursion: the DAG can
// be deep, and a recursive walk would risk overflowing the native stack.
// The visited set is a dense bitset over gate indices rather than a map,
// since indices are small contiguous integers assigned by the node table.
func (c *Circuit) Depends(h Handle, mask map[uint32]bool) []uint32 {
	var (
		visited = bitset.New(uint(len(c.nodes)))
		order   []uint32
		work    = stack.NewStack[depFrame]()
	)

	work.Push(depFrame{h.index, false})

	for !work.IsEmpty() {
		fr := work.Pop()

		if visited.Test(uint(fr.index)) {
			continue
		}

		n := c.nodes[fr.index]

		if fr.expanded || n.isTerminal() {
			visited.Set(uint(fr.index))

			if !isConstIndex(fr.index) && !mask[fr.index] {
				order = append(order, fr.index)
			}

			continue
		}

		// Re-push this node marked expanded, so it is emitted after both
		// children have been visited (post-order).
		work.Push(depFrame{fr.index, true})
		work.Push(depFrame{n.left, false})
		work.Push(depFrame{n.right, false})
	}

	return order
}

type depFrame struct {
	index    uint32
	expanded bool
}

func isConstIndex(i uint32) bool {
	return i == FalseIndex || i == TrueIndex
}
