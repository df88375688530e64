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

import "github.com/ltl2aig/ltl2aig/pkg/util/collection/stack"

// pushKey memoizes push/remove traversals on (index, incoming negation).
// The DAG's sharing is significant, so memoization is mandatory, not an
// optimisation.
type pushKey struct {
	index uint32
	neg   bool
}

// PushNegations rewrites h into negation-normal form: negations appear only
// on literal edges.  Traversal is post-order over an explicit work stack
// (rather than recursion, which risks overflow on a deep DAG), memoized by
// (index, neg).
//
// At a terminal, negation rides on the parent edge and the terminal itself
// is returned unchanged. At an internal gate, child negation flags are XORed
// with the incoming flag, the operator is flipped (AND<->OR) under negation,
// and an edge is only marked negated in the rebuilt node when its target is
// itself a terminal -- in every other case the flip has already absorbed the
// negation.
func (c *Circuit) PushNegations(h Handle) Handle {
	memo := make(map[pushKey]uint32)
	work := stack.NewStack[pushFrame]()
	work.Push(pushFrame{h.index, h.neg, false})

	for !work.IsEmpty() {
		fr := work.Pop()
		k := pushKey{fr.index, fr.neg}

		if _, ok := memo[k]; ok {
			continue
		}

		n := c.nodes[fr.index]

		if n.isTerminal() {
			memo[k] = fr.index
			continue
		}

		flipLeft, flipRight := n.lNeg, n.rNeg
		if fr.neg {
			flipLeft, flipRight = !flipLeft, !flipRight
		}

		if !fr.ready {
			work.Push(pushFrame{fr.index, fr.neg, true})
			work.Push(pushFrame{n.left, flipLeft, false})
			work.Push(pushFrame{n.right, flipRight, false})

			continue
		}

		leftKey := pushKey{n.left, flipLeft}
		rightKey := pushKey{n.right, flipRight}
		flipOp := n.op

		if fr.neg {
			flipOp = dualOp(n.op)
		}

		tLeft := c.nodes[n.left].isTerminal()
		tRight := c.nodes[n.right].isTerminal()
		pushed := c.mk(0, flipOp, memo[leftKey], flipLeft && tLeft, memo[rightKey], flipRight && tRight)
		memo[k] = pushed
	}

	result := memo[pushKey{h.index, h.neg}]

	// A bare (unwrapped) negated terminal handle has nowhere else to carry
	// its negation, so it is preserved at the handle level; every other
	// result has already absorbed its negation structurally.
	if c.nodes[h.index].isTerminal() {
		return Handle{result, h.neg}
	}

	return Handle{result, false}
}

type pushFrame struct {
	index uint32
	neg   bool
	ready bool
}

func dualOp(op Op) Op {
	if op == OpAnd {
		return OpOr
	}

	return OpAnd
}

// RemoveNegations monotonises h with respect to swap: every negated literal
// whose variable is a key of swap is replaced by an uncomplemented fresh
// literal for swap[var]; literals outside dom(swap) keep their negation
// unchanged.  This does not flip operators -- unlike PushNegations it does
// not renormalise the formula, it only eliminates negations on a chosen set
// of variables by introducing fresh ones for their complements.
func (c *Circuit) RemoveNegations(h Handle, swap map[uint32]uint32) Handle {
	memo := make(map[pushKey]removed)
	work := stack.NewStack[pushFrame]()
	work.Push(pushFrame{h.index, h.neg, false})

	for !work.IsEmpty() {
		fr := work.Pop()
		k := pushKey{fr.index, fr.neg}

		if _, ok := memo[k]; ok {
			continue
		}

		n := c.nodes[fr.index]

		if n.isTerminal() {
			if fr.neg && !isConstIndex(fr.index) {
				if fresh, ok := swap[n.sig]; ok {
					memo[k] = removed{c.mk(fresh, OpNone, noChild, false, noChild, false), false}
					continue
				}
			}

			memo[k] = removed{fr.index, fr.neg}

			continue
		}

		if !fr.ready {
			work.Push(pushFrame{fr.index, fr.neg, true})
			work.Push(pushFrame{n.left, n.lNeg, false})
			work.Push(pushFrame{n.right, n.rNeg, false})

			continue
		}

		left := memo[pushKey{n.left, n.lNeg}]
		right := memo[pushKey{n.right, n.rNeg}]
		idx := c.mk(n.sig, n.op, left.index, left.neg, right.index, right.neg)
		memo[k] = removed{idx, false}
	}

	r := memo[pushKey{h.index, h.neg}]

	return Handle{r.index, r.neg}
}

type removed struct {
	index uint32
	neg   bool
}
