package integers

import (
	"math/big"

	"github.com/consensys/circuits/circuit"
)

var testKinds = []Kind{I8, I16, I32, I64, I128, U8, U16, U32, U64, U128}

var testModes = []circuit.Mode{circuit.Constant, circuit.Public, circuit.Private}

// boundaries returns the edge values of a kind plus a couple of small ones.
func boundaries(k Kind) []*big.Int {
	vals := []*big.Int{k.Min(), k.Max(), big.NewInt(0), big.NewInt(1), big.NewInt(2)}
	if k.IsSigned() {
		vals = append(vals, big.NewInt(-1), new(big.Int).Add(k.Min(), big.NewInt(1)))
	} else {
		vals = append(vals, new(big.Int).Sub(k.Max(), big.NewInt(1)))
	}
	return vals
}

// materialize folds two random words into a uniform native value of k.
func materialize(k Kind, lo, hi uint64) *big.Int {
	u := new(big.Int).SetUint64(hi)
	u.Lsh(u, 64)
	u.Or(u, new(big.Int).SetUint64(lo))
	return k.wrap(u)
}

func bigEq(a, b *big.Int) bool { return a.Cmp(b) == 0 }
