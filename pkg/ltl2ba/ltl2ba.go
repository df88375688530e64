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

// Package ltl2ba shells out to the external ltl2ba translator, which turns
// an LTL formula into a textual never-claim Büchi automaton (see package
// nbaparse for the format it emits).
package ltl2ba

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// DefaultPath is the ltl2ba binary looked up on $PATH when Translate is
// called with an empty path.
const DefaultPath = "ltl2ba"

// Translate runs `ltl2ba -f formula` and returns its raw stdout (the
// never-claim automaton, ready for nbaparse.Parse). path overrides the
// binary looked up on $PATH; an empty path uses DefaultPath.
func Translate(ctx context.Context, path, formula string) (string, error) {
	if path == "" {
		path = DefaultPath
	}

	log.WithField("formula", formula).Debug("invoking ltl2ba")

	cmd := exec.CommandContext(ctx, path, "-f", formula)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", fmt.Errorf("ltl2ba not found on PATH: don't forget to install it: %w", err)
		}

		return "", fmt.Errorf("ltl2ba failed: %w: %s", err, stderr.String())
	}

	return stdout.String(), nil
}
