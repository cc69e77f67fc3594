package integers

import (
	"math/big"

	"github.com/consensys/circuits/circuit"
	"github.com/consensys/circuits/types/boolean"
)

// subBits computes x - y over the field embeddings, offset by 2^width to
// stay non-negative, and re-decomposes into width+1 bits: the wrapped
// difference plus a bit that holds iff no borrow occurred (x >= y on the
// unsigned bit patterns).
func (x *Int) subBits(y *Int) (*Int, *boolean.Bool) {
	w := x.kind.BitWidth()
	offset := circuit.FromBigConstant(new(big.Int).Lsh(big.NewInt(1), uint(w)))
	bits := bitsFromLC(x.lc().Add(offset).Sub(y.lc()), w+1)
	return &Int{kind: x.kind, bits: bits[:w]}, bits[w]
}

// SubWrapped returns x - y modulo 2^width. The borrow is left
// unconstrained.
func (x *Int) SubWrapped(y *Int) *Int {
	x.sameKind(y, "sub_wrapped")
	if x.IsConstant() && y.IsConstant() {
		return New(circuit.Constant, x.kind, x.kind.wrap(new(big.Int).Sub(x.Value(), y.Value())))
	}
	diff, _ := x.subBits(y)
	return diff
}

// SubChecked returns x - y and proves the difference does not overflow.
// With constant operands an overflowing difference halts construction;
// otherwise the emitted constraints are unsatisfiable on overflow.
func (x *Int) SubChecked(y *Int) *Int {
	x.sameKind(y, "sub_checked")
	if x.IsConstant() && y.IsConstant() {
		z := new(big.Int).Sub(x.Value(), y.Value())
		if !x.kind.inRange(z) {
			circuit.Halt("integer overflow on %s - %s", x, y)
		}
		return New(circuit.Constant, x.kind, z)
	}
	diff, noBorrow := x.subBits(y)
	if x.kind.IsSigned() {
		// differing operand signs with the result taking y's sign is
		// the only way signed subtraction can overflow.
		differ := x.MSB().Xor(y.MSB())
		flipped := x.MSB().Xor(diff.MSB())
		differ.And(flipped).Assert(false)
	} else {
		noBorrow.Assert(true)
	}
	return diff
}
