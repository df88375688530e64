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
package bexp

// Term abstracts over whatever representation a caller wants Parse to build
// while it walks a boolean expression (a disjunction of conjunctions of
// possibly-negated literals). The parser drives these methods directly as it
// recognises each construct, rather than building an intermediate AST first
// -- a caller backed by a hash-consed circuit gets hash-consing for free,
// with no throwaway tree in between.
type Term[T any] interface {
	// Variable constructs the term for a named literal.
	Variable(name string) T
	// Not constructs the negation of a term.
	Not(T) T
	// And constructs the conjunction of two terms.
	And(T, T) T
	// Or constructs the disjunction of two terms.
	Or(T, T) T
	// True constructs the constant true term.
	True() T
	// False constructs the constant false term.
	False() T
}
