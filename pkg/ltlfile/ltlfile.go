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

// Package ltlfile reads a Wring-syntax LTL specification file -- either a
// single monolithic formula, or, in compositional mode, several named
// "[spec_unit name]" sections -- and converts each unit's formula into the
// syntax ltl2ba expects.
package ltlfile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Unit is one specification unit: its name (empty in monolithic mode) and
// raw, unconverted Wring-syntax formula text.
type Unit struct {
	Name    string
	Formula string
}

var specUnitHeader = regexp.MustCompile(`^\[spec_unit\s*([^\]]*)\]`)

// ReadUnits parses r into one or more specification units. In monolithic
// mode every non-comment, non-"[spec_unit"/"group_order" line is
// concatenated into a single unnamed unit. In compositional mode the file
// must contain one or more "[spec_unit name]" sections; comment lines
// (starting with '#') are dropped, "group_order" lines end the current
// section.
func ReadUnits(r io.Reader, compositional bool) ([]Unit, error) {
	if !compositional {
		return readMonolithic(r)
	}

	return readCompositional(r)
}

func readMonolithic(r io.Reader) ([]Unit, error) {
	var b strings.Builder

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[spec_unit") ||
			strings.HasPrefix(line, "group_order") {
			continue
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return []Unit{{Formula: b.String()}}, nil
}

func readCompositional(r io.Reader) ([]Unit, error) {
	var (
		units   []Unit
		cur     *strings.Builder
		curName string
		scanner = bufio.NewScanner(r)
	)

	flush := func() {
		if cur != nil {
			units = append(units, Unit{Name: curName, Formula: cur.String()})
		}
	}

	for scanner.Scan() {
		line := scanner.Text()

		if m := specUnitHeader.FindStringSubmatch(line); m != nil {
			flush()

			curName = m[1]
			cur = &strings.Builder{}

			continue
		}

		if strings.HasPrefix(line, "group_order") {
			flush()
			cur = nil

			continue
		}

		if cur == nil {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		cur.WriteString(line)
		cur.WriteString("\n")
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(units) == 0 {
		return nil, fmt.Errorf("formula problem: no [spec_unit name] section found; " +
			"a compositional construction was requested but this file holds only one specification")
	}

	return units, nil
}

// ExtractAssumptionsGuarantees splits a unit's raw Wring formula -- several
// ';'-separated subformulas, with '#' introducing a line comment -- into its
// assumption clauses (those starting with "assume") and guarantee clauses
// (everything else containing at least one letter, digit or underscore).
func ExtractAssumptionsGuarantees(formula string) (assumptions, guarantees []string) {
	var stripped strings.Builder

	for _, line := range strings.Split(formula, "\n") {
		if line == "" {
			continue
		}

		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		stripped.WriteString(line)
		stripped.WriteString("\n")
	}

	for _, f := range strings.Split(stripped.String(), ";") {
		switch trimmed := strings.TrimLeft(f, " \t\n"); {
		case strings.HasPrefix(trimmed, "assume"):
			assumptions = append(assumptions, f)
		case hasWordChar(f):
			guarantees = append(guarantees, strings.TrimLeft(f, "\n"))
		}
	}

	return assumptions, guarantees
}

func hasWordChar(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return true
		}
	}

	return false
}

// ToLTL2BA converts a unit's raw Wring formula into ltl2ba's own syntax:
// Wring's "G"/"F"/"+"/"*" operators become "[]"/"<>"/"||"/"&&", and
// "sig=1"/"sig=0" references become "sig"/"!sig". Assumptions and
// guarantees are combined into a single implication "assumptions ->
// guarantees" (an assumption-only unit becomes its own negation, matching
// the "vacuously required to never hold" reading of an environment
// constraint with no guarantee to discharge it against).
func ToLTL2BA(formula string, inputs, outputs []string) (string, error) {
	assumptions, guarantees := ExtractAssumptionsGuarantees(formula)

	convert := func(sub string) string {
		sub = strings.ReplaceAll(sub, "assume", "")
		sub = strings.ReplaceAll(sub, "\t", " ")
		sub = strings.ReplaceAll(sub, "\n", "")
		sub = strings.ReplaceAll(sub, "G", "[] ")
		sub = strings.ReplaceAll(sub, "F", "<> ")
		sub = strings.ReplaceAll(sub, "+", " || ")
		sub = strings.ReplaceAll(sub, "*", " && ")

		for _, sig := range append(append([]string{}, inputs...), outputs...) {
			sub = strings.ReplaceAll(sub, sig+"=0", "!"+sig)
			sub = strings.ReplaceAll(sub, sig+"=1", sig)
		}

		return sub
	}

	join := func(subs []string) string {
		if len(subs) == 0 {
			return ""
		}

		joined := convert(subs[0])
		for _, f := range subs[1:] {
			joined += " && (" + convert(f) + ")"
		}

		return "(" + joined + ")"
	}

	newAssumptions := join(assumptions)
	newGuarantees := join(guarantees)

	var out string

	switch {
	case newAssumptions != "" && newGuarantees != "":
		out = newAssumptions + " -> " + newGuarantees
	case newAssumptions != "":
		out = "!(" + newAssumptions + ")"
	case newGuarantees != "":
		out = newGuarantees
	default:
		return "", fmt.Errorf("empty formula")
	}

	if strings.Contains(out, "=1") || strings.Contains(out, "=0") {
		return "", fmt.Errorf("partition file doesn't match formula")
	}

	return out, nil
}
