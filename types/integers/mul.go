package integers

import (
	"math/big"

	"github.com/consensys/circuits/circuit"
	"github.com/consensys/circuits/types/boolean"
)

// mulParts multiplies the unsigned embeddings of x and y and re-decomposes
// the product into the low width result bits plus everything above them.
//
// Up to 64-bit operands the product fits the field and a single
// multiplication constraint suffices. 128-bit operands are split into 64-bit
// halves, since a 256-bit product exceeds the 253-bit field: with
// x = xLo + 2^64 xHi, the partial sum z0 + 2^64 z1 stays below 2^194 and the
// missing 2^128 * xHi*yHi term is returned separately.
func mulParts(x, y *Int) (low, high []*boolean.Bool, z2 circuit.LinearCombination, split bool) {
	w := x.kind.BitWidth()
	if w <= 64 {
		prod := mulLC(x.lc(), y.lc())
		bits := bitsFromLC(prod, 2*w)
		return bits[:w], bits[w:], circuit.Zero(), false
	}
	xLo, xHi := lcFromBits(x.bits[:64]), lcFromBits(x.bits[64:])
	yLo, yHi := lcFromBits(y.bits[:64]), lcFromBits(y.bits[64:])
	z0 := mulLC(xLo, yLo)
	z1 := mulLC(xLo, yHi).Add(mulLC(xHi, yLo))
	z2 = mulLC(xHi, yHi)
	bits := bitsFromLC(z0.Add(z1.MulConstant(pow2(64))), w+66)
	return bits[:w], bits[w:], z2, true
}

// mulFlagged returns x * y modulo 2^width together with a wire that holds
// iff the native product overflows. The flag is returned rather than
// enforced so that callers composing multiplications (checked
// exponentiation) can gate it on their own selection logic.
func (x *Int) mulFlagged(y *Int) (*Int, *boolean.Bool) {
	if x.IsConstant() && y.IsConstant() {
		full := new(big.Int).Mul(x.Value(), y.Value())
		return New(circuit.Constant, x.kind, x.kind.wrap(full)), boolean.Constant(!x.kind.inRange(full))
	}
	if x.kind.IsSigned() {
		return x.mulFlaggedSigned(y)
	}
	low, high, z2, split := mulParts(x, y)
	overflow := orReduce(high)
	if split {
		overflow = overflow.Or(isZeroLC(z2).Not())
	}
	return &Int{kind: x.kind, bits: low}, overflow
}

// mulFlaggedSigned multiplies through the unsigned magnitudes. The product
// magnitude must stay below 2^(width-1); exactly 2^(width-1) is admitted
// only for a negative result, which selects MIN.
func (x *Int) mulFlaggedSigned(y *Int) (*Int, *boolean.Bool) {
	w := x.kind.BitWidth()
	negRes := x.MSB().Xor(y.MSB())
	mag, magOverflow := x.abs().mulFlagged(y.abs())
	lowNonZero := orReduce(mag.bits[:w-1])
	bad := mag.MSB().And(lowNonZero.Or(negRes.Not()))
	res := Ternary(negRes, mag.NegWrapped(), mag).AsDual()
	return res, magOverflow.Or(bad)
}

// abs returns the magnitude of x under the unsigned dual kind. The
// magnitude of MIN is representable there, so abs never overflows.
func (x *Int) abs() *Int {
	if !x.kind.IsSigned() {
		return x
	}
	return Ternary(x.MSB(), x.NegWrapped(), x).AsDual()
}

// MulWrapped returns x * y modulo 2^width. The discarded product bits are
// left unconstrained. Signed multiplication reduces to the unsigned dual:
// two's complement wrapping multiplication only depends on bit patterns.
func (x *Int) MulWrapped(y *Int) *Int {
	x.sameKind(y, "mul_wrapped")
	if x.IsConstant() && y.IsConstant() {
		return New(circuit.Constant, x.kind, x.kind.wrap(new(big.Int).Mul(x.Value(), y.Value())))
	}
	if x.kind.IsSigned() {
		return x.AsDual().MulWrapped(y.AsDual()).AsDual()
	}
	low, _, _, _ := mulParts(x, y)
	return &Int{kind: x.kind, bits: low}
}

// MulChecked returns x * y and proves the product does not overflow. With
// constant operands an overflowing product halts construction; otherwise
// the emitted constraints are unsatisfiable on overflow.
func (x *Int) MulChecked(y *Int) *Int {
	x.sameKind(y, "mul_checked")
	if x.IsConstant() && y.IsConstant() {
		full := new(big.Int).Mul(x.Value(), y.Value())
		if !x.kind.inRange(full) {
			circuit.Halt("integer overflow on %s * %s", x, y)
		}
		return New(circuit.Constant, x.kind, full)
	}
	res, overflow := x.mulFlagged(y)
	overflow.Assert(false)
	return res
}
