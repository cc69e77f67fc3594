// Package field implements a thin field element gadget over BLS12-377 Fr.
//
// It is the return type of the integer gadgets' field embedding; arithmetic
// beyond injection and ejection lives with the consumers.
package field

import (
	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/circuits/circuit"
)

// Element is a field element wire.
type Element struct {
	lc circuit.LinearCombination
}

// New injects a field element with the given mode and value.
func New(mode circuit.Mode, value fr.Element) Element {
	return Element{lc: circuit.NewVariable(mode, value)}
}

// FromLinearCombination wraps an existing linear combination as a field
// element, without adding constraints.
func FromLinearCombination(lc circuit.LinearCombination) Element {
	return Element{lc: lc}
}

// LinearCombination returns the underlying linear combination.
func (e Element) LinearCombination() circuit.LinearCombination {
	return e.lc
}

// Value ejects the witness value of the element.
func (e Element) Value() fr.Element {
	return e.lc.Value()
}

// Mode ejects the mode of the element.
func (e Element) Mode() circuit.Mode {
	return e.lc.Mode()
}

// IsConstant reports whether the element is a circuit constant.
func (e Element) IsConstant() bool {
	return e.lc.IsConstant()
}
