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

// Package circuit implements an eager rank-1 constraint system environment.
//
// Unlike a compiling front end, every variable carries its witness value at
// allocation time; gadgets fold constant sub-expressions immediately and the
// full system can be checked for satisfiability at any point during
// construction.
//
// The environment is process-wide mutable state. Circuit construction is
// single-goroutine by contract: the caller must not share a construction
// phase between goroutines.
package circuit

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/circuits/logger"
)

// r1c is a single rank-1 constraint a * b = c.
type r1c struct {
	a, b, c LinearCombination
}

type counts struct {
	constants   uint64
	public      uint64
	private     uint64
	constraints uint64
}

type scopeFrame struct {
	name  string
	start counts
}

// Circuit accumulates variables and constraints during one construction
// phase.
type Circuit struct {
	values []fr.Element
	modes  []Mode

	// variables already constrained to be boolean, so b*b = b is enforced
	// at most once per variable.
	booleans *bitset.BitSet

	constraints []r1c
	counts      counts
	scopes      []scopeFrame
}

// Option configures a [Circuit] created with [New].
type Option func(*Circuit)

// WithCapacity pre-sizes the variable and constraint stores.
func WithCapacity(variables, constraints int) Option {
	return func(c *Circuit) {
		c.values = make([]fr.Element, 1, variables+1)
		c.modes = make([]Mode, 1, variables+1)
		c.constraints = make([]r1c, 0, constraints)
	}
}

// New returns a fresh environment. Variable 0 is the constant one wire.
func New(opts ...Option) *Circuit {
	c := &Circuit{
		values:   make([]fr.Element, 1),
		modes:    make([]Mode, 1),
		booleans: bitset.New(64),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.booleans == nil {
		c.booleans = bitset.New(64)
	}
	c.values[0].SetOne()
	c.modes[0] = Public
	return c
}

// std is the current construction environment.
var std = New()

// Set replaces the current environment, e.g. to construct with a pre-sized
// one from [New].
func Set(c *Circuit) {
	std = c
}

// Reset discards the current environment. Wires and linear combinations
// created before the reset are invalidated.
func Reset() {
	std = New()
}

// NewVariable allocates a wire with the given mode and witness value and
// returns it as a linear combination.
//
// A Constant mode wire allocates no variable: it folds into the constant
// part of the returned linear combination, but is still accounted for in the
// constant counter.
func NewVariable(mode Mode, value fr.Element) LinearCombination {
	switch mode {
	case Constant:
		std.counts.constants++
		return FromConstant(value)
	case Public:
		std.counts.public++
	case Private:
		std.counts.private++
	default:
		Halt("cannot allocate a variable in %s", mode)
	}
	id := len(std.values)
	std.values = append(std.values, value)
	std.modes = append(std.modes, mode)
	var one fr.Element
	one.SetOne()
	return LinearCombination{terms: []Term{{VariableID: id, Coeff: one}}}
}

// Enforce appends the constraint a * b = c.
//
// If all three operands are constant the constraint is evaluated on the spot
// instead of being recorded: construction halts if it does not hold.
func Enforce(a, b, c LinearCombination) {
	if a.IsConstant() && b.IsConstant() && c.IsConstant() {
		var p fr.Element
		av, bv, cv := a.Value(), b.Value(), c.Value()
		p.Mul(&av, &bv)
		if !p.Equal(&cv) {
			Halt("constant constraint does not hold: %s * %s != %s", av.String(), bv.String(), cv.String())
		}
		return
	}
	std.constraints = append(std.constraints, r1c{a: a, b: b, c: c})
	std.counts.constraints++
}

// EnforceEq appends the constraint a = b.
func EnforceEq(a, b LinearCombination) {
	Enforce(a, One(), b)
}

// AssertBoolean constrains the wire behind lc to be 0 or 1. The constraint
// is skipped for constants and for variables already marked boolean.
func AssertBoolean(lc LinearCombination) {
	if lc.IsConstant() {
		v := lc.Value()
		var one fr.Element
		one.SetOne()
		if !v.IsZero() && !v.Equal(&one) {
			Halt("constant %s is not a boolean", v.String())
		}
		return
	}
	if len(lc.terms) == 1 && lc.constant.IsZero() && lc.terms[0].Coeff.IsOne() {
		id := uint(lc.terms[0].VariableID)
		if std.booleans.Test(id) {
			return
		}
		std.booleans.Set(id)
	}
	Enforce(lc, lc, lc)
}

// NumConstants returns the number of constant wires created so far.
func NumConstants() uint64 { return std.counts.constants }

// NumPublic returns the number of public variables allocated so far.
func NumPublic() uint64 { return std.counts.public }

// NumPrivate returns the number of private variables allocated so far.
func NumPrivate() uint64 { return std.counts.private }

// NumConstraints returns the number of constraints enforced so far.
func NumConstraints() uint64 { return std.counts.constraints }

// Scope runs fn inside a named scope; [InScope] then reports the wires and
// constraints created within the innermost running scope.
func Scope(name string, fn func()) {
	log := logger.Logger()
	std.scopes = append(std.scopes, scopeFrame{name: name, start: std.counts})
	log.Debug().Str("scope", name).Msg("enter scope")
	defer func() {
		frame := std.scopes[len(std.scopes)-1]
		std.scopes = std.scopes[:len(std.scopes)-1]
		log.Debug().
			Str("scope", frame.name).
			Uint64("constants", std.counts.constants-frame.start.constants).
			Uint64("public", std.counts.public-frame.start.public).
			Uint64("private", std.counts.private-frame.start.private).
			Uint64("constraints", std.counts.constraints-frame.start.constraints).
			Msg("exit scope")
	}()
	fn()
}

// InScope returns the number of constant, public and private wires and of
// constraints created since the innermost scope was entered. Outside any
// scope it returns the global counters.
func InScope() (constants, public, private, constraints uint64) {
	start := counts{}
	if n := len(std.scopes); n > 0 {
		start = std.scopes[n-1].start
	}
	return std.counts.constants - start.constants,
		std.counts.public - start.public,
		std.counts.private - start.private,
		std.counts.constraints - start.constraints
}

// Halt aborts circuit construction. It is reserved for construction-time
// failures: misuse of a gadget, or a checked operation on constant operands
// whose native result is invalid. Witness-dependent failures never halt;
// they surface through [IsSatisfied].
func Halt(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log := logger.Logger()
	log.Error().Msg(msg)
	panic("circuit: " + msg)
}
