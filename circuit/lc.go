// Copyright 2020 ConsenSys AG
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package circuit

import (
	"math/big"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Term is a coefficient applied to a circuit variable.
type Term struct {
	VariableID int
	Coeff      fr.Element
}

// LinearCombination is a constant plus a weighted sum of circuit variables.
// Terms are kept sorted by variable id with no duplicates and no zero
// coefficients. The zero value is the constant 0.
//
// A LinearCombination references variables of the environment it was built
// in; it is invalidated by [Reset].
type LinearCombination struct {
	constant fr.Element
	terms    []Term
}

// Zero returns the constant 0 linear combination.
func Zero() LinearCombination {
	return LinearCombination{}
}

// One returns the constant 1 linear combination.
func One() LinearCombination {
	var one fr.Element
	one.SetOne()
	return LinearCombination{constant: one}
}

// FromConstant returns the linear combination holding the constant v.
func FromConstant(v fr.Element) LinearCombination {
	return LinearCombination{constant: v}
}

// FromBigConstant returns the linear combination holding the constant v,
// reduced into the field.
func FromBigConstant(v *big.Int) LinearCombination {
	var e fr.Element
	e.SetBigInt(v)
	return LinearCombination{constant: e}
}

// IsConstant reports whether the linear combination references no variable.
func (lc LinearCombination) IsConstant() bool {
	return len(lc.terms) == 0
}

// Add returns lc + other.
func (lc LinearCombination) Add(other LinearCombination) LinearCombination {
	var res LinearCombination
	res.constant.Add(&lc.constant, &other.constant)
	res.terms = mergeTerms(lc.terms, other.terms)
	return res
}

// Sub returns lc - other.
func (lc LinearCombination) Sub(other LinearCombination) LinearCombination {
	return lc.Add(other.Neg())
}

// Neg returns -lc.
func (lc LinearCombination) Neg() LinearCombination {
	var res LinearCombination
	res.constant.Neg(&lc.constant)
	res.terms = make([]Term, len(lc.terms))
	for i, t := range lc.terms {
		res.terms[i].VariableID = t.VariableID
		res.terms[i].Coeff.Neg(&t.Coeff)
	}
	return res
}

// MulConstant returns lc scaled by coeff.
func (lc LinearCombination) MulConstant(coeff fr.Element) LinearCombination {
	if coeff.IsZero() {
		return LinearCombination{}
	}
	var res LinearCombination
	res.constant.Mul(&lc.constant, &coeff)
	res.terms = make([]Term, len(lc.terms))
	for i, t := range lc.terms {
		res.terms[i].VariableID = t.VariableID
		res.terms[i].Coeff.Mul(&t.Coeff, &coeff)
	}
	return res
}

// Value evaluates the linear combination against the witness values of the
// current environment.
func (lc LinearCombination) Value() fr.Element {
	v := lc.constant
	var t fr.Element
	for _, term := range lc.terms {
		t.Mul(&term.Coeff, &std.values[term.VariableID])
		v.Add(&v, &t)
	}
	return v
}

// Mode returns the dominant mode over the variables of the linear
// combination; a pure constant is Constant.
func (lc LinearCombination) Mode() Mode {
	m := Constant
	for _, term := range lc.terms {
		m = m.Combine(std.modes[term.VariableID])
	}
	return m
}

// mergeTerms merges two sorted term slices, summing coefficients of shared
// variables and dropping terms that cancel.
func mergeTerms(a, b []Term) []Term {
	res := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].VariableID < b[j].VariableID:
			res = append(res, a[i])
			i++
		case a[i].VariableID > b[j].VariableID:
			res = append(res, b[j])
			j++
		default:
			var c fr.Element
			c.Add(&a[i].Coeff, &b[j].Coeff)
			if !c.IsZero() {
				res = append(res, Term{VariableID: a[i].VariableID, Coeff: c})
			}
			i++
			j++
		}
	}
	res = append(res, a[i:]...)
	res = append(res, b[j:]...)
	return res
}
