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
package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ltl2aig/ltl2aig/pkg/pipeline"
)

// fakeTool writes a trivial shell script standing in for an external binary
// that always prints the given output on stdout.
func fakeTool(t *testing.T, name, stdout string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	script := "#!/bin/sh\ncat <<'EOF'\n" + stdout + "\nEOF\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	return path
}

// Fixed never-claim standing in for whatever ltl2ba would emit for "!(a)":
// one non-accepting state that loops forever on "a" and is otherwise a dead
// end -- just enough structure to exercise Lift end-to-end.
const fakeAutomaton = `never { /* !(a) */
*/
T0_init:
	if
	:: (a) -> goto T0_init
	fi;
}
`

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunProducesRealizableAIG(t *testing.T) {
	dir := t.TempDir()

	ltl2baPath := fakeTool(t, "fake-ltl2ba", fakeAutomaton)
	checkerPath := fakeTool(t, "fake-checker", "result: REALIZABLE")

	partFile := writeFile(t, dir, "spec.part", ".inputs a\n.outputs b\n")
	formulaFile := writeFile(t, dir, "spec.ltl", "G(a=1 -> F(b=1));\n")

	result, err := pipeline.Run(context.Background(), pipeline.Options{
		FormulaFile:   formulaFile,
		PartitionFile: partFile,
		K:             1,
		LTL2BAPath:    ltl2baPath,
		CheckerPath:   checkerPath,
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.ExitCode != pipeline.ExitRealizable {
		t.Fatalf("exit code = %d, want %d", result.ExitCode, pipeline.ExitRealizable)
	}

	if !strings.HasSuffix(result.OutputFile, "_1_REAL.aag") {
		t.Fatalf("unexpected output filename: %q", result.OutputFile)
	}

	contents, err := os.ReadFile(result.OutputFile)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(contents), "aag ") {
		t.Fatalf("expected an AIGER header, got:\n%s", contents)
	}
}

func TestRunProducesUnrealizableAIG(t *testing.T) {
	dir := t.TempDir()

	ltl2baPath := fakeTool(t, "fake-ltl2ba", fakeAutomaton)
	checkerPath := fakeTool(t, "fake-checker", "result: UNREALIZABLE")

	partFile := writeFile(t, dir, "spec.part", ".inputs a\n.outputs b\n")
	formulaFile := writeFile(t, dir, "spec.ltl", "G(a=1 -> F(b=1));\n")

	result, err := pipeline.Run(context.Background(), pipeline.Options{
		FormulaFile:   formulaFile,
		PartitionFile: partFile,
		K:             2,
		LTL2BAPath:    ltl2baPath,
		CheckerPath:   checkerPath,
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.ExitCode != pipeline.ExitUnrealizable {
		t.Fatalf("exit code = %d, want %d", result.ExitCode, pipeline.ExitUnrealizable)
	}

	if !strings.HasSuffix(result.OutputFile, "_2_UNREAL.aag") {
		t.Fatalf("unexpected output filename: %q", result.OutputFile)
	}
}

func TestRunReportsUnknownWhenCheckerIsInconclusive(t *testing.T) {
	dir := t.TempDir()

	ltl2baPath := fakeTool(t, "fake-ltl2ba", fakeAutomaton)
	checkerPath := fakeTool(t, "fake-checker", "out of memory")

	partFile := writeFile(t, dir, "spec.part", ".inputs a\n.outputs b\n")
	formulaFile := writeFile(t, dir, "spec.ltl", "G(a=1 -> F(b=1));\n")

	result, err := pipeline.Run(context.Background(), pipeline.Options{
		FormulaFile:   formulaFile,
		PartitionFile: partFile,
		K:             1,
		LTL2BAPath:    ltl2baPath,
		CheckerPath:   checkerPath,
	})
	if err != nil {
		t.Fatal(err)
	}

	if result.ExitCode != pipeline.ExitUnknown {
		t.Fatalf("exit code = %d, want %d", result.ExitCode, pipeline.ExitUnknown)
	}
}
