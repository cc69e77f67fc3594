package integers

import (
	"math/big"

	"github.com/consensys/circuits/circuit"
)

// divQR allocates private quotient and remainder witnesses for the unsigned
// division x / y and binds them with q*y + r = x and r < y. The remainder
// bound also rules out a zero divisor: no witness satisfies r < 0. A zero
// divisor at witness time therefore leaves the system unsatisfiable, and the
// arbitrary local witness values do not matter.
func divQR(x, y *Int) (q, r *Int) {
	xv, yv := x.Value(), y.Value()
	qv, rv := new(big.Int), new(big.Int).Set(xv)
	if yv.Sign() != 0 {
		qv.QuoRem(xv, yv, rv)
	}
	q = New(circuit.Private, x.kind, qv)
	r = New(circuit.Private, x.kind, rv)
	if w := x.kind.BitWidth(); w <= 64 {
		// q*y fits the field directly.
		circuit.Enforce(q.lc(), y.lc(), x.lc().Sub(r.lc()))
	} else {
		// 128-bit: split q and y into 64-bit halves. The high-half
		// product must vanish (otherwise q*y >= 2^128 > x) and the
		// rest stays below 2^194, within field capacity.
		qLo, qHi := lcFromBits(q.bits[:64]), lcFromBits(q.bits[64:])
		yLo, yHi := lcFromBits(y.bits[:64]), lcFromBits(y.bits[64:])
		circuit.Enforce(qHi, yHi, circuit.Zero())
		mid := mulLC(qLo, yHi).Add(mulLC(qHi, yLo))
		z := mulLC(qLo, yLo).Add(mid.MulConstant(pow2(64)))
		circuit.EnforceEq(z, x.lc().Sub(r.lc()))
	}
	r.IsLessThan(y).Assert(true)
	return q, r
}

func (x *Int) div(y *Int, checked bool) *Int {
	if y.IsConstant() && y.Value().Sign() == 0 {
		circuit.Halt("division by zero: %s / %s", x, y)
	}
	if x.IsConstant() && y.IsConstant() {
		q := new(big.Int).Quo(x.Value(), y.Value())
		if checked && !x.kind.inRange(q) {
			// signed MIN / -1
			circuit.Halt("integer overflow on %s / %s", x, y)
		}
		return New(circuit.Constant, x.kind, x.kind.wrap(q))
	}
	if !x.kind.IsSigned() {
		q, _ := divQR(x, y)
		return q
	}
	negQ := x.MSB().Xor(y.MSB())
	qMag, _ := divQR(x.abs(), y.abs())
	if checked {
		// a positive result of magnitude 2^(width-1) cannot be
		// represented: the signed MIN / -1 overflow.
		negQ.Not().And(qMag.MSB()).Assert(false)
	}
	return Ternary(negQ, qMag.NegWrapped(), qMag).AsDual()
}

// DivWrapped returns the truncated quotient x / y with native wrapping
// semantics: signed MIN / -1 wraps back to MIN. A constant zero divisor
// halts construction; a non-constant zero divisor makes the system
// unsatisfiable.
func (x *Int) DivWrapped(y *Int) *Int {
	x.sameKind(y, "div_wrapped")
	return x.div(y, false)
}

// DivChecked returns the truncated quotient x / y and proves it does not
// overflow: beyond the divisor rules of [Int.DivWrapped], the signed
// MIN / -1 case halts construction on constants and is otherwise encoded as
// an unsatisfiable constraint.
func (x *Int) DivChecked(y *Int) *Int {
	x.sameKind(y, "div_checked")
	return x.div(y, true)
}
