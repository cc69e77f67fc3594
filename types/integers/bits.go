package integers

import (
	"math/big"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/circuits/circuit"
	"github.com/consensys/circuits/types/boolean"
)

// bitsFromLC binds n fresh private boolean wires to the little-endian
// decomposition of lc, whose value must fit in n bits. A constant lc folds
// into constant wires with no constraints; otherwise the bits cost one
// boolean constraint each plus a single weighted-sum equality.
func bitsFromLC(lc circuit.LinearCombination, n int) []*boolean.Bool {
	e := lc.Value()
	v := e.BigInt(new(big.Int))
	bits := make([]*boolean.Bool, n)
	if lc.IsConstant() {
		for i := range bits {
			bits[i] = boolean.New(circuit.Constant, v.Bit(i) == 1)
		}
		return bits
	}
	acc := circuit.Zero()
	var coeff fr.Element
	coeff.SetOne()
	for i := range bits {
		bits[i] = boolean.New(circuit.Private, v.Bit(i) == 1)
		acc = acc.Add(bits[i].LinearCombination().MulConstant(coeff))
		coeff.Double(&coeff)
	}
	circuit.EnforceEq(acc, lc)
	return bits
}

// lcFromBits is the weighted sum of a bit range, least significant first.
func lcFromBits(bits []*boolean.Bool) circuit.LinearCombination {
	acc := circuit.Zero()
	var coeff fr.Element
	coeff.SetOne()
	for _, b := range bits {
		acc = acc.Add(b.LinearCombination().MulConstant(coeff))
		coeff.Double(&coeff)
	}
	return acc
}

// orReduce folds a bit range into a single wire that holds iff any bit
// holds.
func orReduce(bits []*boolean.Bool) *boolean.Bool {
	acc := boolean.Constant(false)
	for _, b := range bits {
		acc = acc.Or(b)
	}
	return acc
}

// mulLC returns a wire bound to the product of two linear combinations,
// folding when either side is constant. The caller guarantees the product
// does not overflow the field.
func mulLC(a, b circuit.LinearCombination) circuit.LinearCombination {
	if a.IsConstant() {
		return b.MulConstant(a.Value())
	}
	if b.IsConstant() {
		return a.MulConstant(b.Value())
	}
	av, bv := a.Value(), b.Value()
	var p fr.Element
	p.Mul(&av, &bv)
	r := circuit.NewVariable(circuit.Private, p)
	circuit.Enforce(a, b, r)
	return r
}

// isZeroLC returns a wire that holds iff lc evaluates to zero, using the
// usual inverse trick: with m boolean, lc*inv = 1-m and lc*m = 0 admit a
// solution only for m = (lc == 0).
func isZeroLC(lc circuit.LinearCombination) *boolean.Bool {
	if lc.IsConstant() {
		v := lc.Value()
		return boolean.Constant(v.IsZero())
	}
	v := lc.Value()
	m := boolean.New(circuit.Private, v.IsZero())
	var inv fr.Element
	if !v.IsZero() {
		inv.Inverse(&v)
	}
	invLC := circuit.NewVariable(circuit.Private, inv)
	circuit.Enforce(lc, invLC, m.Not().LinearCombination())
	circuit.Enforce(lc, m.LinearCombination(), circuit.Zero())
	return m
}

// pow2 returns 2^n as a field constant.
func pow2(n int) fr.Element {
	var e fr.Element
	e.SetBigInt(new(big.Int).Lsh(big.NewInt(1), uint(n)))
	return e
}
