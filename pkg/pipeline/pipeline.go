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

// Package pipeline wires together every stage of the translation: reading
// the partition and LTL specification, converting and negating each spec
// unit's formula, calling out to ltl2ba and lifting the resulting automaton
// into the shared circuit, calling out to the realizability checker, and
// finally writing the AIG. This is the Go counterpart of the original
// tool's own main().
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ltl2aig/ltl2aig/pkg/automaton"
	"github.com/ltl2aig/ltl2aig/pkg/circuit"
	"github.com/ltl2aig/ltl2aig/pkg/ltl2ba"
	"github.com/ltl2aig/ltl2aig/pkg/ltlfile"
	"github.com/ltl2aig/ltl2aig/pkg/nbaparse"
	"github.com/ltl2aig/ltl2aig/pkg/partition"
	"github.com/ltl2aig/ltl2aig/pkg/realize"
	"github.com/ltl2aig/ltl2aig/pkg/util"
)

// Exit codes returned by Run, matching the realizability verdict reached
// for the input specification.
const (
	// ExitRealizable indicates a winning strategy for the system was found.
	ExitRealizable = 10
	// ExitUnrealizable indicates the environment can force a violation.
	ExitUnrealizable = 20
	// ExitUnknown indicates the realizability checker could not decide.
	ExitUnknown = 30
)

// Options configures a single translation run.
type Options struct {
	FormulaFile   string
	PartitionFile string
	K             int
	Compositional bool
	// LTL2BAPath and CheckerPath override the external tools looked up on
	// $PATH; empty uses their respective defaults.
	LTL2BAPath  string
	CheckerPath string
}

// Result reports where the AIG was written and which exit code it warrants.
type Result struct {
	ExitCode   int
	OutputFile string
}

// Run executes the full translation pipeline.
func Run(ctx context.Context, opts Options) (Result, error) {
	stats := util.NewPerfStats()
	defer stats.Log("translation")

	part, err := readPartition(opts.PartitionFile)
	if err != nil {
		return Result{}, err
	}

	units, err := readUnits(opts.FormulaFile, opts.Compositional)
	if err != nil {
		return Result{}, err
	}

	c := circuit.New()
	alloc := automaton.NewAllocator()
	signals := make(map[string]uint32, len(part.Inputs)+len(part.Outputs))

	for _, s := range part.Inputs {
		signals[s] = alloc.Next()
	}

	for _, s := range part.Outputs {
		signals[s] = alloc.Next()
	}

	var latches []circuit.Latch

	errorNet := c.Constant(false)

	for _, unit := range units {
		lifted, err := liftUnit(ctx, c, alloc, signals, part, opts, unit)
		if err != nil {
			return Result{}, fmt.Errorf("spec unit %q: %w", unit.Name, err)
		}

		latches = append(latches, lifted.Latches...)
		errorNet = c.Or(errorNet, lifted.Error)
	}

	verdict, err := realize.Check(ctx, realize.Options{
		Path:          opts.CheckerPath,
		FormulaFile:   opts.FormulaFile,
		PartitionFile: opts.PartitionFile,
		KBound:        opts.K - 1,
		Compositional: opts.Compositional,
	})
	if err != nil {
		return Result{}, err
	}

	outPath, exitCode := outcome(opts.FormulaFile, opts.K, verdict)

	log.WithFields(log.Fields{
		"solved":     verdict.Solved,
		"realizable": verdict.Realizable,
		"output":     outPath,
	}).Info("translation complete")

	f, err := os.Create(outPath)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	inputs := make([]circuit.Signal, len(part.Inputs))
	for i, s := range part.Inputs {
		inputs[i] = circuit.Signal{Name: s, Var: signals[s]}
	}

	outputs := make([]circuit.Signal, len(part.Outputs))
	for i, s := range part.Outputs {
		outputs[i] = circuit.Signal{Name: s, Var: signals[s]}
	}

	if err := c.WriteAAG(f, inputs, outputs, latches, errorNet); err != nil {
		return Result{}, err
	}

	return Result{ExitCode: exitCode, OutputFile: outPath}, nil
}

func readPartition(path string) (partition.Partition, error) {
	f, err := os.Open(path)
	if err != nil {
		return partition.Partition{}, err
	}
	defer f.Close()

	return partition.Read(f)
}

func readUnits(path string, compositional bool) ([]ltlfile.Unit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ltlfile.ReadUnits(f, compositional)
}

// liftUnit converts one spec unit's Wring-syntax formula into ltl2ba
// syntax, negates it (the k-co-Büchi complementation trick: the environment
// wins iff the *negated* property's accepting condition is visited more
// than k times), translates it via ltl2ba, and lifts the resulting
// automaton into latch update functions.
func liftUnit(
	ctx context.Context,
	c *circuit.Circuit,
	alloc *automaton.Allocator,
	signals map[string]uint32,
	part partition.Partition,
	opts Options,
	unit ltlfile.Unit,
) (automaton.Lifted, error) {
	converted, err := ltlfile.ToLTL2BA(unit.Formula, part.Inputs, part.Outputs)
	if err != nil {
		return automaton.Lifted{}, err
	}

	negated := "!(" + converted + ")"

	out, err := ltl2ba.Translate(ctx, opts.LTL2BAPath, negated)
	if err != nil {
		return automaton.Lifted{}, err
	}

	nba, err := nbaparse.Parse(out)
	if err != nil {
		return automaton.Lifted{}, err
	}

	return automaton.Lift(c, signals, uint(opts.K), nba, alloc)
}

// outcome derives the output filename and exit code from the realizability
// verdict, matching <formula-without-extension>_<k>_{REAL|UNREAL}.aag.
func outcome(formulaFile string, k int, v realize.Verdict) (string, int) {
	stem := strings.TrimSuffix(formulaFile, filepath.Ext(formulaFile))

	switch {
	case v.Solved && v.Realizable:
		return stem + "_" + strconv.Itoa(k) + "_REAL.aag", ExitRealizable
	case v.Solved:
		return stem + "_" + strconv.Itoa(k) + "_UNREAL.aag", ExitUnrealizable
	default:
		return stem + "_" + strconv.Itoa(k) + "_UNREAL.aag", ExitUnknown
	}
}
