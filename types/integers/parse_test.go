package integers

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/circuits/circuit"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0u8", "0u8.constant"},
		{"42u8", "42u8.constant"},
		{"255u8.private", "255u8.private"},
		{"-1i8", "-1i8.constant"},
		{"-128i8.public", "-128i8.public"},
		{"1_000i32", "1000i32.constant"},
		{"1_0_0u16", "100u16.constant"},
		{"340282366920938463463374607431768211455u128", "340282366920938463463374607431768211455u128.constant"},
		{"-170141183460469231731687303715884105728i128.private", "-170141183460469231731687303715884105728i128.private"},
	}
	for _, tc := range cases {
		circuit.Reset()
		x, err := Parse(tc.in)
		require.NoError(t, err, tc.in)
		if diff := cmp.Diff(tc.want, x.String()); diff != "" {
			t.Errorf("Parse(%q) rendered mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, k := range testKinds {
		for _, v := range boundaries(k) {
			for _, m := range testModes {
				circuit.Reset()
				x := New(m, k, v)
				s := x.String()
				circuit.Reset()
				y, err := Parse(s)
				require.NoError(t, err, s)
				require.Equal(t, x.Kind(), y.Kind())
				require.Equal(t, x.Mode(), y.Mode())
				require.True(t, bigEq(x.Value(), y.Value()), "%s round trip", s)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{"", ErrSyntax},
		{"u8", ErrSyntax},
		{"-u8", ErrSyntax},
		{"_1u8", ErrSyntax},
		{"42", ErrSyntax},
		{"42u9", ErrSyntax},
		{"42u8x", ErrSyntax},
		{"42u8.", ErrSyntax},
		{"42u8.secret", ErrSyntax},
		{"42u8 ", ErrSyntax},
		{"256u8", ErrRange},
		{"-1u8", ErrRange},
		{"128i8", ErrRange},
		{"-129i8", ErrRange},
	}
	for _, tc := range cases {
		circuit.Reset()
		_, err := Parse(tc.in)
		require.ErrorIs(t, err, tc.err, "Parse(%q)", tc.in)
	}
}

func TestParseDefaultsToConstant(t *testing.T) {
	circuit.Reset()
	x, err := Parse("7i64")
	require.NoError(t, err)
	require.True(t, x.IsConstant())
	require.Equal(t, uint64(0), circuit.NumConstraints())
}

func TestFormat(t *testing.T) {
	circuit.Reset()
	x := NewFromInt64(circuit.Public, I16, -5)
	require.Equal(t, "-5i16.public", fmt.Sprintf("%v", x))
	require.Equal(t, "-5i16.public", fmt.Sprintf("%s", x))
	require.Equal(t, "-5", fmt.Sprintf("%d", x))
}
