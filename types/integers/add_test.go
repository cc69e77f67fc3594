package integers

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/circuits/circuit"
)

func TestAddWrapped(t *testing.T) {
	for _, k := range testKinds {
		for _, av := range boundaries(k) {
			for _, bv := range boundaries(k) {
				circuit.Reset()
				a := New(circuit.Public, k, av)
				b := New(circuit.Private, k, bv)
				got := a.AddWrapped(b)
				want := k.wrap(new(big.Int).Add(av, bv))
				require.True(t, bigEq(want, got.Value()), "%s: %s +w %s = %s, want %s", k, av, bv, got.Value(), want)
				require.True(t, circuit.IsSatisfied())
			}
		}
	}
}

func TestAddWrappedRandom(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 30
	properties := gopter.NewProperties(params)
	for _, k := range testKinds {
		properties.Property("add_wrapped "+k.String(), prop.ForAll(
			func(alo, ahi, blo, bhi uint64) bool {
				circuit.Reset()
				av, bv := materialize(k, alo, ahi), materialize(k, blo, bhi)
				got := New(circuit.Private, k, av).AddWrapped(New(circuit.Private, k, bv))
				return bigEq(k.wrap(new(big.Int).Add(av, bv)), got.Value()) && circuit.IsSatisfied()
			},
			gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
		))
	}
	properties.TestingRun(t)
}

func TestAddChecked(t *testing.T) {
	for _, k := range testKinds {
		for _, av := range boundaries(k) {
			for _, bv := range boundaries(k) {
				sum := new(big.Int).Add(av, bv)
				overflows := !k.inRange(sum)

				// constant operands: overflow halts construction
				circuit.Reset()
				a := New(circuit.Constant, k, av)
				b := New(circuit.Constant, k, bv)
				if overflows {
					require.Panics(t, func() { a.AddChecked(b) }, "%s: %s + %s", k, av, bv)
				} else {
					require.True(t, bigEq(sum, a.AddChecked(b).Value()))
				}

				// variable operands: overflow is unsatisfiability
				circuit.Reset()
				a = New(circuit.Private, k, av)
				b = New(circuit.Private, k, bv)
				got := a.AddChecked(b)
				require.Equal(t, !overflows, circuit.IsSatisfied(), "%s: %s + %s", k, av, bv)
				if !overflows {
					require.True(t, bigEq(sum, got.Value()))
				}
			}
		}
	}
}

// mixed visibility must use the constraint channel, not the halt channel
func TestAddCheckedMixedModes(t *testing.T) {
	circuit.Reset()
	a := NewFromUint64(circuit.Constant, U8, 255)
	b := NewFromUint64(circuit.Private, U8, 1)
	require.NotPanics(t, func() { a.AddChecked(b) })
	require.False(t, circuit.IsSatisfied())
}

// the worked width-8 scenario: 250 + 10 wraps to 4 and cannot be checked
func TestAddOverflowScenario(t *testing.T) {
	circuit.Reset()
	a := NewFromUint64(circuit.Public, U8, 250)
	b := NewFromUint64(circuit.Public, U8, 10)
	require.True(t, bigEq(big.NewInt(4), a.AddWrapped(b).Value()))
	require.True(t, circuit.IsSatisfied())

	circuit.Reset()
	a = NewFromUint64(circuit.Public, U8, 250)
	b = NewFromUint64(circuit.Public, U8, 10)
	a.AddChecked(b)
	require.False(t, circuit.IsSatisfied())

	circuit.Reset()
	a = NewFromUint64(circuit.Public, U8, 5)
	b = NewFromUint64(circuit.Public, U8, 10)
	require.True(t, bigEq(big.NewInt(15), a.AddChecked(b).Value()))
	require.True(t, circuit.IsSatisfied())
}

func TestAddKindMismatch(t *testing.T) {
	circuit.Reset()
	a := NewFromUint64(circuit.Private, U8, 1)
	b := NewFromUint64(circuit.Private, U16, 1)
	require.Panics(t, func() { a.AddWrapped(b) })
}
