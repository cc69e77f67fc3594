package integers

import (
	"math/big"

	"github.com/consensys/circuits/circuit"
	"github.com/consensys/circuits/types/boolean"
)

// addBits sums the field embeddings of x and y and re-decomposes the result
// into width+1 bits: the wrapped sum plus the carry out of the width.
func (x *Int) addBits(y *Int) (*Int, *boolean.Bool) {
	w := x.kind.BitWidth()
	bits := bitsFromLC(x.lc().Add(y.lc()), w+1)
	return &Int{kind: x.kind, bits: bits[:w]}, bits[w]
}

// AddWrapped returns x + y modulo 2^width. Overflow is silently discarded:
// the carry is left unconstrained.
func (x *Int) AddWrapped(y *Int) *Int {
	x.sameKind(y, "add_wrapped")
	if x.IsConstant() && y.IsConstant() {
		return New(circuit.Constant, x.kind, x.kind.wrap(new(big.Int).Add(x.Value(), y.Value())))
	}
	sum, _ := x.addBits(y)
	return sum
}

// AddChecked returns x + y and proves the sum does not overflow. With
// constant operands an overflowing sum halts construction; otherwise the
// emitted constraints are unsatisfiable on overflow.
func (x *Int) AddChecked(y *Int) *Int {
	x.sameKind(y, "add_checked")
	if x.IsConstant() && y.IsConstant() {
		z := new(big.Int).Add(x.Value(), y.Value())
		if !x.kind.inRange(z) {
			circuit.Halt("integer overflow on %s + %s", x, y)
		}
		return New(circuit.Constant, x.kind, z)
	}
	sum, carry := x.addBits(y)
	if x.kind.IsSigned() {
		// same operand signs with a flipped result sign is the only
		// way signed addition can overflow.
		sameSign := x.MSB().Xor(y.MSB()).Not()
		flipped := x.MSB().Xor(sum.MSB())
		sameSign.And(flipped).Assert(false)
	} else {
		carry.Assert(false)
	}
	return sum
}
