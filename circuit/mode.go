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

import "fmt"

// Mode is the visibility of a wire in the constraint system.
//
// A Constant wire is baked into the circuit and known to everyone. A Public
// wire is part of the public input, known to the verifier. A Private wire is
// part of the witness and known only to the prover.
type Mode uint8

const (
	Constant Mode = iota
	Public
	Private
)

// IsConstant reports whether the mode is Constant.
func (m Mode) IsConstant() bool {
	return m == Constant
}

// Combine returns the dominant mode between m and other; a wire derived from
// wires of both modes must carry the more restrictive one.
func (m Mode) Combine(other Mode) Mode {
	if other > m {
		return other
	}
	return m
}

func (m Mode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode parses the textual form of a mode as emitted by [Mode.String].
func ParseMode(s string) (Mode, error) {
	switch s {
	case "constant":
		return Constant, nil
	case "public":
		return Public, nil
	case "private":
		return Private, nil
	default:
		return Constant, fmt.Errorf("unknown mode %q", s)
	}
}
