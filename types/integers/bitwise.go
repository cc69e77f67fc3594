package integers

import (
	"github.com/consensys/circuits/types/boolean"
)

// And returns the bitwise conjunction of x and y.
func (x *Int) And(y *Int) *Int {
	x.sameKind(y, "and")
	bits := make([]*boolean.Bool, len(x.bits))
	for i := range bits {
		bits[i] = x.bits[i].And(y.bits[i])
	}
	return &Int{kind: x.kind, bits: bits}
}

// Or returns the bitwise disjunction of x and y.
func (x *Int) Or(y *Int) *Int {
	x.sameKind(y, "or")
	bits := make([]*boolean.Bool, len(x.bits))
	for i := range bits {
		bits[i] = x.bits[i].Or(y.bits[i])
	}
	return &Int{kind: x.kind, bits: bits}
}

// Xor returns the bitwise exclusive disjunction of x and y.
func (x *Int) Xor(y *Int) *Int {
	x.sameKind(y, "xor")
	bits := make([]*boolean.Bool, len(x.bits))
	for i := range bits {
		bits[i] = x.bits[i].Xor(y.bits[i])
	}
	return &Int{kind: x.kind, bits: bits}
}

// Not returns the bitwise complement of x. It costs no constraints.
func (x *Int) Not() *Int {
	bits := make([]*boolean.Bool, len(x.bits))
	for i := range bits {
		bits[i] = x.bits[i].Not()
	}
	return &Int{kind: x.kind, bits: bits}
}

// Ternary returns ifTrue when cond holds and ifFalse otherwise, selecting
// bit by bit. Both branches are materialised: the constraint graph has no
// control flow, so an unselected branch still pays its construction cost.
func Ternary(cond *boolean.Bool, ifTrue, ifFalse *Int) *Int {
	ifTrue.sameKind(ifFalse, "ternary")
	bits := make([]*boolean.Bool, len(ifTrue.bits))
	for i := range bits {
		bits[i] = cond.Ternary(ifTrue.bits[i], ifFalse.bits[i])
	}
	return &Int{kind: ifTrue.kind, bits: bits}
}
