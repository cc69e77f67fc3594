// Package boolean implements the boolean wire gadget.
//
// A boolean is a linear combination constrained to evaluate to 0 or 1. Gate
// outputs (And, Or, Xor, Ternary) are boolean by construction of their
// constraint, so only freshly injected wires pay the b*b = b constraint.
// Operations on constant operands fold eagerly and emit nothing.
package boolean

import (
	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/circuits/circuit"
)

// Bool is a single boolean wire.
type Bool struct {
	lc circuit.LinearCombination
}

// New injects a boolean wire with the given mode and value.
func New(mode circuit.Mode, value bool) *Bool {
	var v fr.Element
	if value {
		v.SetOne()
	}
	lc := circuit.NewVariable(mode, v)
	circuit.AssertBoolean(lc)
	return &Bool{lc: lc}
}

// Constant returns a constant boolean wire.
func Constant(value bool) *Bool {
	return New(circuit.Constant, value)
}

// FromLinearCombination wraps a linear combination already known to be
// boolean-valued, without adding constraints.
func FromLinearCombination(lc circuit.LinearCombination) *Bool {
	return &Bool{lc: lc}
}

// LinearCombination returns the underlying linear combination.
func (b *Bool) LinearCombination() circuit.LinearCombination {
	return b.lc
}

// Value ejects the witness value of the wire.
func (b *Bool) Value() bool {
	v := b.lc.Value()
	return !v.IsZero()
}

// Mode ejects the mode of the wire.
func (b *Bool) Mode() circuit.Mode {
	return b.lc.Mode()
}

// IsConstant reports whether the wire is a circuit constant.
func (b *Bool) IsConstant() bool {
	return b.lc.IsConstant()
}

// Not returns the negation of b. It is linear and costs no constraint.
func (b *Bool) Not() *Bool {
	return &Bool{lc: circuit.One().Sub(b.lc)}
}

// And returns a AND b, costing one constraint unless an operand is constant.
func (b *Bool) And(other *Bool) *Bool {
	if b.IsConstant() {
		if b.Value() {
			return other
		}
		return Constant(false)
	}
	if other.IsConstant() {
		if other.Value() {
			return b
		}
		return Constant(false)
	}
	r := witness(b.Value() && other.Value())
	// a * b = r
	circuit.Enforce(b.lc, other.lc, r.lc)
	return r
}

// Or returns a OR b, costing one constraint unless an operand is constant.
func (b *Bool) Or(other *Bool) *Bool {
	if b.IsConstant() {
		if b.Value() {
			return Constant(true)
		}
		return other
	}
	if other.IsConstant() {
		if other.Value() {
			return Constant(true)
		}
		return b
	}
	r := witness(b.Value() || other.Value())
	// (1 - a) * (1 - b) = 1 - r
	circuit.Enforce(b.Not().lc, other.Not().lc, r.Not().lc)
	return r
}

// Xor returns a XOR b, costing one constraint unless an operand is constant.
func (b *Bool) Xor(other *Bool) *Bool {
	if b.IsConstant() {
		if b.Value() {
			return other.Not()
		}
		return other
	}
	if other.IsConstant() {
		if other.Value() {
			return b.Not()
		}
		return b
	}
	r := witness(b.Value() != other.Value())
	// 2a * b = a + b - r
	circuit.Enforce(b.lc.Add(b.lc), other.lc, b.lc.Add(other.lc).Sub(r.lc))
	return r
}

// Ternary returns ifTrue when b holds and ifFalse otherwise, costing one
// constraint unless the condition is constant.
func (b *Bool) Ternary(ifTrue, ifFalse *Bool) *Bool {
	if b.IsConstant() {
		if b.Value() {
			return ifTrue
		}
		return ifFalse
	}
	var v bool
	if b.Value() {
		v = ifTrue.Value()
	} else {
		v = ifFalse.Value()
	}
	r := witness(v)
	// cond * (t - f) = r - f
	circuit.Enforce(b.lc, ifTrue.lc.Sub(ifFalse.lc), r.lc.Sub(ifFalse.lc))
	return r
}

// Assert constrains b to equal value. On a constant wire the check happens
// immediately and a mismatch halts construction; otherwise a mismatch makes
// the system unsatisfiable.
func (b *Bool) Assert(value bool) {
	if b.IsConstant() {
		if b.Value() != value {
			circuit.Halt("assertion failed: constant boolean is %v, expected %v", b.Value(), value)
		}
		return
	}
	var want circuit.LinearCombination
	if value {
		want = circuit.One()
	} else {
		want = circuit.Zero()
	}
	circuit.EnforceEq(b.lc, want)
}

// witness allocates a fresh private wire holding value. The caller is
// responsible for binding it with a constraint that forces booleanness.
func witness(value bool) *Bool {
	var v fr.Element
	if value {
		v.SetOne()
	}
	return &Bool{lc: circuit.NewVariable(circuit.Private, v)}
}
