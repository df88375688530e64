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

// Package realize shells out to an external Acacia+-style LTL realizability
// checker: given the original (un-negated) formula file and partition, it
// answers whether a (k-1)-bounded winning strategy for the system exists.
package realize

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultPath is the checker binary looked up on $PATH when Check is called
// with an empty path.
const DefaultPath = "acacia"

// Verdict is the checker's reply: whether it reached a conclusive answer,
// and, if so, whether the specification is realizable.
type Verdict struct {
	Solved     bool
	Realizable bool
}

// Options mirrors the checker's own command-line surface.
type Options struct {
	// Path overrides the binary looked up on $PATH; empty uses DefaultPath.
	Path string
	// FormulaFile and PartitionFile are passed through as --ltl/--part.
	FormulaFile   string
	PartitionFile string
	// KBound is the checker's own bound, one less than the game's k (the
	// game's k+1st visit is the failure the checker is asked to rule out).
	KBound int
	// Compositional requests --syn COMP --nbw COMP.
	Compositional bool
}

// Check runs the realizability checker and parses its verdict. The checker
// is expected to print a line containing one of "REALIZABLE",
// "UNREALIZABLE" or "UNKNOWN" (case-insensitive); anything else is treated
// as an inconclusive run.
func Check(ctx context.Context, opts Options) (Verdict, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	args := []string{
		"--ltl", opts.FormulaFile,
		"--part", opts.PartitionFile,
		"--player", "1",
		"--kbound", strconv.Itoa(opts.KBound),
		"--verb", "0",
		"--crit", "OFF",
		"--opt", "none",
		"--check", "REAL",
	}

	if opts.Compositional {
		args = append(args, "--syn", "COMP", "--nbw", "COMP")
	}

	log.WithField("args", args).Debug("invoking realizability checker")

	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Verdict{}, fmt.Errorf("realizability checker failed: %w: %s", err, stderr.String())
	}

	return parseVerdict(stdout.String()), nil
}

func parseVerdict(output string) Verdict {
	upper := strings.ToUpper(output)

	switch {
	case strings.Contains(upper, "UNREALIZABLE"):
		return Verdict{Solved: true, Realizable: false}
	case strings.Contains(upper, "REALIZABLE"):
		return Verdict{Solved: true, Realizable: true}
	default:
		return Verdict{Solved: false, Realizable: false}
	}
}
