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
package partition_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ltl2aig/ltl2aig/pkg/partition"
)

func TestReadParsesInputsAndOutputs(t *testing.T) {
	p, err := partition.Read(strings.NewReader(".inputs A B C\n.outputs X Y\n"))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(p.Inputs, want) {
		t.Fatalf("inputs = %v, want %v", p.Inputs, want)
	}

	if want := []string{"X", "Y"}; !reflect.DeepEqual(p.Outputs, want) {
		t.Fatalf("outputs = %v, want %v", p.Outputs, want)
	}
}

func TestReadLowercasesInputsOnly(t *testing.T) {
	p, err := partition.Read(strings.NewReader(".inputs REQ\n.outputs ACK\n"))
	if err != nil {
		t.Fatal(err)
	}

	if p.Inputs[0] != "req" {
		t.Fatalf("expected input name lower-cased, got %q", p.Inputs[0])
	}

	if p.Outputs[0] != "ACK" {
		t.Fatalf("expected output name kept verbatim, got %q", p.Outputs[0])
	}
}

func TestReadMissingInputsErrors(t *testing.T) {
	if _, err := partition.Read(strings.NewReader(".outputs y\n")); err == nil {
		t.Fatal("expected an error when .inputs is absent")
	}
}

func TestReadMissingOutputsErrors(t *testing.T) {
	if _, err := partition.Read(strings.NewReader(".inputs x\n")); err == nil {
		t.Fatal("expected an error when .outputs is absent")
	}
}
