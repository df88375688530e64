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

// Package nbaparse parses the textual never-claim automaton emitted by
// ltl2ba's -f mode into an automaton.NBA.
package nbaparse

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ltl2aig/ltl2aig/pkg/automaton"
)

var (
	transitionSep = regexp.MustCompile(`;\n\}?\n?`)
	headerBodySep = regexp.MustCompile(`:\n`)
	acceptPrefix  = regexp.MustCompile(`^accept_`)
	ifLine        = regexp.MustCompile(`^\s*if\s`)
	acceptInLabel = regexp.MustCompile(`accept_`)
	trailingKw    = regexp.MustCompile(`\s+f?i?`)
)

// isInitial reports whether a state's ltl2ba-assigned name marks it as the
// initial state: ltl2ba always names it something containing "init".
func isInitial(name string) bool {
	return strings.Contains(name, "init")
}

// Parse parses the stdout of `ltl2ba -f <formula>` into an NBA. ltl2ba
// prefixes its output with a comment block containing the formula and its
// never-claim restatement, terminated by "*/\n"; everything before that is
// discarded.
func Parse(output string) (automaton.NBA, error) {
	parts := strings.SplitN(output, "*/\n", 2)
	if len(parts) < 2 {
		return automaton.NBA{}, fmt.Errorf("empty automaton (LTL syntax error?)")
	}

	body := parts[1]
	blocks := transitionSep.Split(body, -1)

	nba := automaton.NBA{Accepting: map[automaton.State]bool{}}
	seen := map[automaton.State]bool{}

	addState := func(s automaton.State) {
		if !seen[s] {
			seen[s] = true
			nba.States = append(nba.States, s)
		}
	}

	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}

		halves := headerBodySep.Split(block, -1)
		if len(halves) < 2 {
			continue
		}

		head, tail := halves[0], halves[1]

		state, accept := parseStateHeader(head)
		if isInitial(string(state)) {
			state = "initial"
			nba.Initial = state
		}

		addState(state)

		if accept {
			nba.Accepting[state] = true
		}

		switch {
		case strings.Contains(tail, "skip"):
			nba.Edges = append(nba.Edges, automaton.Edge{From: state, To: state, Label: "1"})
		case strings.Contains(tail, "false"):
			// No outgoing transitions from this guard.
		default:
			for _, rule := range strings.Split(tail, "::") {
				if ifLine.MatchString(rule) {
					continue
				}

				edge, to, err := parseRule(state, rule)
				if err != nil {
					continue
				}

				addState(to)
				nba.Edges = append(nba.Edges, edge)
			}
		}
	}

	if nba.Initial == "" {
		return automaton.NBA{}, fmt.Errorf("automaton has no initial state")
	}

	return nba, nil
}

// parseStateHeader splits a state's header line ("accept_S1" or "T0_init")
// into its canonical name and whether it is a Büchi-accepting state.
func parseStateHeader(head string) (automaton.State, bool) {
	pieces := acceptPrefix.Split(head, -1)
	if len(pieces) == 2 {
		return automaton.State(pieces[1]), true
	}

	return automaton.State(pieces[0]), false
}

// parseRule parses a single "label -> goto target" guarded-transition rule.
func parseRule(from automaton.State, rule string) (automaton.Edge, automaton.State, error) {
	fr := strings.SplitN(rule, " -> goto ", 2)
	if len(fr) != 2 {
		return automaton.Edge{}, "", fmt.Errorf("malformed rule %q", rule)
	}

	label := strings.TrimSpace(fr[0])

	pieces := acceptInLabel.Split(fr[1], -1)
	tail := pieces[len(pieces)-1]

	nameParts := trailingKw.Split(tail, -1)
	to := automaton.State(strings.TrimSpace(nameParts[0]))

	if isInitial(string(to)) {
		to = "initial"
	}

	return automaton.Edge{From: from, To: to, Label: label}, to, nil
}
