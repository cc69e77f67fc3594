package integers

import (
	"math/big"
	mathbits "math/bits"

	"github.com/consensys/circuits/circuit"
	"github.com/consensys/circuits/types/boolean"
)

// shift applies a barrel shifter to x, driven by the low log2(width) bits
// of the amount: stage j conditionally shifts by 2^j. Widths are powers of
// two, so consulting only those bits reduces the amount modulo the width.
// Left shifts and unsigned right shifts fill with zeros; signed right
// shifts fill with the sign bit.
//
// The checked variants instead require the amount to be below the width: a
// constant amount out of range halts construction, otherwise every amount
// bit at or above log2(width) is constrained to zero.
func (x *Int) shift(amount *Int, left, checked bool) *Int {
	if amount.kind.IsSigned() {
		circuit.Halt("shift amount must be an unsigned integer, got %s", amount.kind)
	}
	w := x.kind.BitWidth()
	stages := mathbits.Len(uint(w)) - 1
	bigW := big.NewInt(int64(w))
	if x.IsConstant() && amount.IsConstant() {
		return x.shiftNative(amount, left, checked)
	}
	if checked {
		if amount.IsConstant() {
			if amount.Value().Cmp(bigW) >= 0 {
				circuit.Halt("shift amount %s is out of range for %s", amount, x.kind)
			}
		} else {
			for j := stages; j < len(amount.bits); j++ {
				amount.bits[j].Assert(false)
			}
		}
	}
	cur := x.BitsLE()
	for j := 0; j < stages; j++ {
		c := 1 << j
		cond := amount.bits[j]
		next := make([]*boolean.Bool, w)
		for i := range next {
			var shifted *boolean.Bool
			switch {
			case left && i >= c:
				shifted = cur[i-c]
			case !left && i+c < w:
				shifted = cur[i+c]
			case !left && x.kind.IsSigned():
				shifted = cur[w-1]
			default:
				shifted = boolean.Constant(false)
			}
			next[i] = cond.Ternary(shifted, cur[i])
		}
		cur = next
	}
	return &Int{kind: x.kind, bits: cur}
}

func (x *Int) shiftNative(amount *Int, left, checked bool) *Int {
	k := x.kind
	w := k.BitWidth()
	av := amount.Value()
	if checked && av.Cmp(big.NewInt(int64(w))) >= 0 {
		circuit.Halt("shift amount %s is out of range for %s", amount, k)
	}
	s := uint(new(big.Int).Mod(av, big.NewInt(int64(w))).Uint64())
	var v *big.Int
	if left {
		v = k.wrap(new(big.Int).Lsh(k.pattern(x.Value()), s))
	} else {
		// big.Int right shift floors, which is the logical shift on a
		// non-negative value and the arithmetic shift on a negative one.
		v = new(big.Int).Rsh(x.Value(), s)
	}
	return New(circuit.Constant, k, v)
}

// ShlWrapped returns x << amount with the amount reduced modulo the width.
// Bits shifted beyond the width are discarded.
func (x *Int) ShlWrapped(amount *Int) *Int {
	return x.shift(amount, true, false)
}

// ShlChecked returns x << amount and requires amount < width, halting on a
// constant out-of-range amount and otherwise making the system
// unsatisfiable. As with native checked shifts, bits shifted out of the
// value are still discarded.
func (x *Int) ShlChecked(amount *Int) *Int {
	return x.shift(amount, true, true)
}

// ShrWrapped returns x >> amount with the amount reduced modulo the width:
// a logical shift for unsigned integers, an arithmetic shift for signed
// ones.
func (x *Int) ShrWrapped(amount *Int) *Int {
	return x.shift(amount, false, false)
}

// ShrChecked returns x >> amount and requires amount < width, halting on a
// constant out-of-range amount and otherwise making the system
// unsatisfiable.
func (x *Int) ShrChecked(amount *Int) *Int {
	return x.shift(amount, false, true)
}
