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

func nativeShl(k Kind, v *big.Int, s uint64) *big.Int {
	s %= uint64(k.BitWidth())
	return k.wrap(new(big.Int).Lsh(k.pattern(v), uint(s)))
}

func nativeShr(k Kind, v *big.Int, s uint64) *big.Int {
	s %= uint64(k.BitWidth())
	return new(big.Int).Rsh(v, uint(s))
}

func TestShlWrapped(t *testing.T) {
	for _, k := range []Kind{U8, I8, U64, I64, U128, I128} {
		for _, v := range boundaries(k) {
			for _, s := range []uint64{0, 1, 3, 7, 8, 63, 127, 128, 200} {
				circuit.Reset()
				x := New(circuit.Private, k, v)
				amt := NewFromUint64(circuit.Private, U8, s)
				got := x.ShlWrapped(amt)
				want := nativeShl(k, v, s)
				require.True(t, bigEq(want, got.Value()), "%s: %s <<w %d = %s, want %s", k, v, s, got.Value(), want)
				require.True(t, circuit.IsSatisfied())
			}
		}
	}
}

func TestShrWrapped(t *testing.T) {
	for _, k := range []Kind{U8, I8, U64, I64, U128, I128} {
		for _, v := range boundaries(k) {
			for _, s := range []uint64{0, 1, 3, 7, 8, 63, 127, 128, 200} {
				circuit.Reset()
				x := New(circuit.Private, k, v)
				amt := NewFromUint64(circuit.Private, U8, s)
				got := x.ShrWrapped(amt)
				want := nativeShr(k, v, s)
				require.True(t, bigEq(want, got.Value()), "%s: %s >>w %d = %s, want %s", k, v, s, got.Value(), want)
				require.True(t, circuit.IsSatisfied())
			}
		}
	}
}

func TestShrArithmetic(t *testing.T) {
	// sign bit fills from the left on signed right shifts
	circuit.Reset()
	x := NewFromInt64(circuit.Private, I8, -64)
	amt := NewFromUint64(circuit.Private, U8, 3)
	require.True(t, bigEq(big.NewInt(-8), x.ShrWrapped(amt).Value()))

	circuit.Reset()
	u := NewFromUint64(circuit.Private, U8, 0xc0)
	require.True(t, bigEq(big.NewInt(0x18), u.ShrWrapped(NewFromUint64(circuit.Private, U8, 3)).Value()))
}

func TestShiftRandom(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 20
	properties := gopter.NewProperties(params)
	for _, k := range testKinds {
		properties.Property("shl/shr wrapped "+k.String(), prop.ForAll(
			func(lo, hi uint64, s uint8) bool {
				circuit.Reset()
				v := materialize(k, lo, hi)
				amt := NewFromUint64(circuit.Private, U8, uint64(s))
				shl := New(circuit.Private, k, v).ShlWrapped(amt)
				shr := New(circuit.Private, k, v).ShrWrapped(amt)
				return bigEq(nativeShl(k, v, uint64(s)), shl.Value()) &&
					bigEq(nativeShr(k, v, uint64(s)), shr.Value()) &&
					circuit.IsSatisfied()
			},
			gen.UInt64(), gen.UInt64(), gen.UInt8(),
		))
	}
	properties.TestingRun(t)
}

func TestShiftChecked(t *testing.T) {
	for _, k := range []Kind{U8, I8, U128} {
		w := uint64(k.BitWidth())

		// in-range amounts behave like the wrapped variant
		circuit.Reset()
		x := New(circuit.Private, k, big.NewInt(1))
		amt := NewFromUint64(circuit.Private, U16, w-1)
		got := x.ShlChecked(amt)
		require.True(t, bigEq(nativeShl(k, big.NewInt(1), w-1), got.Value()))
		require.True(t, circuit.IsSatisfied())

		// constant out-of-range amount halts
		circuit.Reset()
		x = New(circuit.Private, k, big.NewInt(1))
		amtc := NewFromUint64(circuit.Constant, U16, w)
		require.Panics(t, func() { x.ShlChecked(amtc) })
		circuit.Reset()
		x = New(circuit.Private, k, big.NewInt(1))
		require.Panics(t, func() { x.ShrChecked(NewFromUint64(circuit.Constant, U16, w)) })

		// variable out-of-range amount is unsatisfiable
		circuit.Reset()
		x = New(circuit.Private, k, big.NewInt(1))
		amtp := NewFromUint64(circuit.Private, U16, w)
		x.ShlChecked(amtp)
		require.False(t, circuit.IsSatisfied())

		circuit.Reset()
		x = New(circuit.Private, k, big.NewInt(1))
		x.ShrChecked(NewFromUint64(circuit.Private, U16, w))
		require.False(t, circuit.IsSatisfied())
	}
}

// checked shifts drop shifted-out value bits like the wrapped ones; only
// the amount is range-bound
func TestShlCheckedTruncatesValue(t *testing.T) {
	circuit.Reset()
	x := NewFromUint64(circuit.Private, U8, 0xff)
	amt := NewFromUint64(circuit.Private, U8, 1)
	require.True(t, bigEq(big.NewInt(0xfe), x.ShlChecked(amt).Value()))
	require.True(t, circuit.IsSatisfied())
}

func TestShiftSignedAmount(t *testing.T) {
	circuit.Reset()
	x := NewFromUint64(circuit.Private, U8, 1)
	amt := NewFromInt64(circuit.Private, I8, 1)
	require.Panics(t, func() { x.ShlWrapped(amt) })
}
