// Copyright 2020 ConsenSys AG
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package circuit

import (
	"errors"
	"runtime"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/sync/errgroup"
)

var errUnsatisfied = errors.New("constraint system is unsatisfied")

// IsSatisfied reports whether every enforced constraint holds under the
// witness values of the current environment.
//
// Evaluation is read-only over the variable store and runs in parallel over
// chunks of constraints.
func IsSatisfied() bool {
	n := len(std.constraints)
	if n == 0 {
		return true
	}
	chunk := (n + runtime.NumCPU() - 1) / runtime.NumCPU()
	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start // shadow for per-iteration capture under go < 1.22
		end := min(start+chunk, n)
		g.Go(func() error {
			var p fr.Element
			for _, c := range std.constraints[start:end] {
				av, bv, cv := c.a.Value(), c.b.Value(), c.c.Value()
				p.Mul(&av, &bv)
				if !p.Equal(&cv) {
					return errUnsatisfied
				}
			}
			return nil
		})
	}
	return g.Wait() == nil
}
