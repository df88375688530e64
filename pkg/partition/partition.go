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

// Package partition reads the .part input/output partition file: a small
// text format naming which signals the environment controls (".inputs")
// and which the system under synthesis controls (".outputs").
package partition

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Partition is the parsed signal partition. Input names are lower-cased on
// read (matching the original tool's normalisation -- ltl2ba itself
// lower-cases atomic proposition names); output names are taken verbatim.
type Partition struct {
	Inputs  []string
	Outputs []string
}

// Read parses a partition file of the form:
//
//	.inputs a b c
//	.outputs x y
func Read(r io.Reader) (Partition, error) {
	var p Partition

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")

		switch {
		case strings.HasPrefix(line, ".inputs"):
			p.Inputs = splitNames(line, true)
		case strings.HasPrefix(line, ".outputs"):
			p.Outputs = splitNames(line, false)
		}
	}

	if err := scanner.Err(); err != nil {
		return Partition{}, err
	}

	if p.Inputs == nil {
		return Partition{}, fmt.Errorf("input signals not found")
	}

	if p.Outputs == nil {
		return Partition{}, fmt.Errorf("output signals not found")
	}

	return p, nil
}

func splitNames(line string, lower bool) []string {
	fields := strings.Fields(line)

	var names []string

	// fields[0] is the directive itself (".inputs" or ".outputs").
	for _, f := range fields[1:] {
		if lower {
			f = strings.ToLower(f)
		}

		names = append(names, f)
	}

	return names
}
