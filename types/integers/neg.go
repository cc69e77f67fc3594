package integers

import (
	"github.com/consensys/circuits/circuit"
)

// NegWrapped returns -x modulo 2^width as complement plus one. Negating MIN
// of a signed kind yields MIN again, matching native wrapping negation.
func (x *Int) NegWrapped() *Int {
	return x.Not().AddWrapped(One(x.kind))
}

// NegChecked returns -x for a signed integer and proves the negation does
// not overflow; negating MIN is the single overflowing case. Construction
// halts on unsigned kinds.
func (x *Int) NegChecked() *Int {
	if !x.kind.IsSigned() {
		circuit.Halt("neg_checked is only defined on signed integers, got %s", x.kind)
	}
	if x.IsConstant() {
		v := x.Value()
		if v.Cmp(x.kind.info().min) == 0 {
			circuit.Halt("integer overflow on -%s", x)
		}
		return New(circuit.Constant, x.kind, v.Neg(v))
	}
	return x.Not().AddChecked(One(x.kind))
}
