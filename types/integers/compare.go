package integers

import (
	"github.com/consensys/circuits/types/boolean"
)

// Equal returns a wire that holds iff x and y agree on every bit. Only
// integers of the same kind are comparable.
func (x *Int) Equal(y *Int) *boolean.Bool {
	x.sameKind(y, "equal")
	acc := boolean.Constant(true)
	for i := range x.bits {
		acc = acc.And(x.bits[i].Xor(y.bits[i]).Not())
	}
	return acc
}

// NotEqual returns a wire that holds iff x and y differ.
func (x *Int) NotEqual(y *Int) *boolean.Bool {
	return x.Equal(y).Not()
}

// IsLessThan returns a wire that holds iff x < y.
//
// Unsigned ordering is the borrow of the subtraction x - y. Signed ordering
// splits on the sign bits: with differing signs the negative operand is
// smaller, with equal signs the wrapped difference cannot overflow and its
// sign bit decides, so MIN correctly precedes every non-negative value.
func (x *Int) IsLessThan(y *Int) *boolean.Bool {
	x.sameKind(y, "compare")
	if !x.kind.IsSigned() {
		_, noBorrow := x.subBits(y)
		return noBorrow.Not()
	}
	differ := x.MSB().Xor(y.MSB())
	return differ.Ternary(x.MSB(), x.SubWrapped(y).MSB())
}

// IsGreaterThan returns a wire that holds iff x > y.
func (x *Int) IsGreaterThan(y *Int) *boolean.Bool {
	return y.IsLessThan(x)
}

// IsLessThanOrEqual returns a wire that holds iff x <= y.
func (x *Int) IsLessThanOrEqual(y *Int) *boolean.Bool {
	return x.IsGreaterThan(y).Not()
}

// IsGreaterThanOrEqual returns a wire that holds iff x >= y.
func (x *Int) IsGreaterThanOrEqual(y *Int) *boolean.Bool {
	return x.IsLessThan(y).Not()
}
