package integers

import (
	"math/big"

	"github.com/consensys/circuits/circuit"
	"github.com/consensys/circuits/types/boolean"
)

// pow raises x to the exponent e by square and multiply over the exponent
// bits, most significant first. The exponent must be unsigned; the result
// has the width of the base.
//
// The checked variant verifies overflow per step. Each squaring flag is
// enforced unconditionally: the running value is a genuine power of the
// base with exponent at most e, so a raised flag is a real overflow of the
// chain. Each multiply-by-base flag is gated on the exponent bit that
// selects it, so a discarded branch can never make the system
// unsatisfiable.
func (x *Int) pow(e *Int, checked bool) *Int {
	if e.kind.IsSigned() {
		circuit.Halt("exponent must be an unsigned integer, got %s", e.kind)
	}
	if x.IsConstant() && e.IsConstant() {
		return x.powNative(e, checked)
	}
	r := One(x.kind)
	for i := len(e.bits) - 1; i >= 0; i-- {
		if checked {
			var f *boolean.Bool
			r, f = r.mulFlagged(r)
			f.Assert(false)
			m, fm := r.mulFlagged(x)
			e.bits[i].And(fm).Assert(false)
			r = Ternary(e.bits[i], m, r)
		} else {
			r = r.MulWrapped(r)
			r = Ternary(e.bits[i], r.MulWrapped(x), r)
		}
	}
	return r
}

// powNative mirrors the circuit chain on constants. The checked walk halts
// at the first out-of-range intermediate, which is exactly when the circuit
// rendition would be unsatisfiable.
func (x *Int) powNative(e *Int, checked bool) *Int {
	k := x.kind
	ev := e.Value()
	if !checked {
		u := new(big.Int).Exp(k.pattern(x.Value()), ev, new(big.Int).Lsh(big.NewInt(1), uint(k.BitWidth())))
		return New(circuit.Constant, k, k.wrap(u))
	}
	xv := x.Value()
	r := big.NewInt(1)
	for i := ev.BitLen() - 1; i >= 0; i-- {
		r.Mul(r, r)
		if !k.inRange(r) {
			circuit.Halt("integer overflow on %s ** %s", x, e)
		}
		if ev.Bit(i) == 1 {
			r.Mul(r, xv)
			if !k.inRange(r) {
				circuit.Halt("integer overflow on %s ** %s", x, e)
			}
		}
	}
	return New(circuit.Constant, k, r)
}

// PowWrapped returns x ** e modulo 2^width, truncating every intermediate
// product of the square-and-multiply chain.
func (x *Int) PowWrapped(e *Int) *Int {
	return x.pow(e, false)
}

// PowChecked returns x ** e and proves that no step of the
// square-and-multiply chain overflows. With constant operands an overflow
// halts construction; otherwise the emitted constraints are unsatisfiable
// on overflow.
func (x *Int) PowChecked(e *Int) *Int {
	return x.pow(e, true)
}
