// Package integers implements fixed-width signed and unsigned integer
// gadgets.
//
// An integer is a little-endian vector of boolean wires, one per bit of its
// native width. Arithmetic comes in two families: wrapped operations reduce
// modulo 2^width like native wrapping arithmetic, checked operations prove
// the absence of overflow. A checked operation on constant operands halts
// construction when the native result overflows; with any public or private
// operand it instead emits constraints that are unsatisfiable exactly when
// overflow occurs, since the violation can only be judged against witness
// values.
package integers

import (
	"math/big"
	"strconv"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/consensys/circuits/circuit"
	"github.com/consensys/circuits/types/boolean"
	"github.com/consensys/circuits/types/field"
)

// Kind identifies one of the ten supported integer types.
type Kind uint8

const (
	I8 Kind = iota
	I16
	I32
	I64
	I128
	U8
	U16
	U32
	U64
	U128
)

type kindInfo struct {
	width  int
	signed bool
	name   string
	dual   Kind
	min    *big.Int
	max    *big.Int
	mask   *big.Int // 2^width - 1
}

var kinds [10]kindInfo

var kindByName = make(map[string]Kind)

func init() {
	signedKinds := [...]Kind{I8, I16, I32, I64, I128}
	unsignedKinds := [...]Kind{U8, U16, U32, U64, U128}
	for i, width := range [...]int{8, 16, 32, 64, 128} {
		s, u := signedKinds[i], unsignedKinds[i]
		kinds[s] = mkKindInfo(width, true, u)
		kinds[u] = mkKindInfo(width, false, s)
		kindByName[kinds[s].name] = s
		kindByName[kinds[u].name] = u
	}
}

func mkKindInfo(width int, signed bool, dual Kind) kindInfo {
	one := big.NewInt(1)
	mask := new(big.Int).Sub(new(big.Int).Lsh(one, uint(width)), one)
	info := kindInfo{width: width, signed: signed, dual: dual, mask: mask}
	if signed {
		info.name = "i"
		info.min = new(big.Int).Neg(new(big.Int).Lsh(one, uint(width-1)))
		info.max = new(big.Int).Sub(new(big.Int).Lsh(one, uint(width-1)), one)
	} else {
		info.name = "u"
		info.min = new(big.Int)
		info.max = new(big.Int).Set(mask)
	}
	info.name += strconv.Itoa(width)
	return info
}

func (k Kind) info() *kindInfo {
	if int(k) >= len(kinds) {
		circuit.Halt("unknown integer kind %d", uint8(k))
	}
	return &kinds[k]
}

// BitWidth returns the number of bits of the kind.
func (k Kind) BitWidth() int { return k.info().width }

// IsSigned reports whether the kind is signed.
func (k Kind) IsSigned() bool { return k.info().signed }

// Dual returns the kind of the same width and opposite signedness.
func (k Kind) Dual() Kind { return k.info().dual }

// Min returns the smallest native value of the kind.
func (k Kind) Min() *big.Int { return new(big.Int).Set(k.info().min) }

// Max returns the largest native value of the kind.
func (k Kind) Max() *big.Int { return new(big.Int).Set(k.info().max) }

// TypeName returns the type suffix of the kind, e.g. "i8" or "u128".
func (k Kind) TypeName() string { return k.info().name }

func (k Kind) String() string { return k.TypeName() }

// KindFromName returns the kind with the given type suffix.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// pattern returns the unsigned two's complement bit pattern of v, reduced to
// the width of k.
func (k Kind) pattern(v *big.Int) *big.Int {
	return new(big.Int).And(v, k.info().mask)
}

// wrap reduces v modulo 2^width and reinterprets the resulting bit pattern
// as a native value of k.
func (k Kind) wrap(v *big.Int) *big.Int {
	u := k.pattern(v)
	info := k.info()
	if info.signed && u.Bit(info.width-1) == 1 {
		u.Sub(u, new(big.Int).Lsh(big.NewInt(1), uint(info.width)))
	}
	return u
}

func (k Kind) inRange(v *big.Int) bool {
	info := k.info()
	return v.Cmp(info.min) >= 0 && v.Cmp(info.max) <= 0
}

// Int is a fixed-width integer wire vector, least significant bit first.
// Operations never mutate their operands; each result owns freshly derived
// wires.
type Int struct {
	kind Kind
	bits []*boolean.Bool
}

// New injects an integer of the given kind. Construction halts if value is
// outside the native range of the kind.
func New(mode circuit.Mode, k Kind, value *big.Int) *Int {
	info := k.info()
	if !k.inRange(value) {
		circuit.Halt("value %s is out of range for %s", value.String(), info.name)
	}
	u := k.pattern(value)
	bits := make([]*boolean.Bool, info.width)
	for i := range bits {
		bits[i] = boolean.New(mode, u.Bit(i) == 1)
	}
	return &Int{kind: k, bits: bits}
}

// NewFromUint64 injects an unsigned integer from a native uint64.
func NewFromUint64(mode circuit.Mode, k Kind, value uint64) *Int {
	return New(mode, k, new(big.Int).SetUint64(value))
}

// NewFromInt64 injects a signed integer from a native int64.
func NewFromInt64(mode circuit.Mode, k Kind, value int64) *Int {
	return New(mode, k, big.NewInt(value))
}

// Zero returns the constant 0 of the given kind.
func Zero(k Kind) *Int {
	return New(circuit.Constant, k, new(big.Int))
}

// One returns the constant 1 of the given kind.
func One(k Kind) *Int {
	return New(circuit.Constant, k, big.NewInt(1))
}

// FromBitsLE assembles an integer from existing boolean wires, least
// significant first. Construction halts unless exactly BitWidth wires are
// given. The wires are shared, not copied: no constraints are added.
func FromBitsLE(k Kind, bits []*boolean.Bool) *Int {
	if len(bits) != k.BitWidth() {
		circuit.Halt("%s requires %d bits, got %d", k, k.BitWidth(), len(bits))
	}
	owned := make([]*boolean.Bool, len(bits))
	copy(owned, bits)
	return &Int{kind: k, bits: owned}
}

// Kind returns the kind of the integer.
func (x *Int) Kind() Kind { return x.kind }

// BitsLE returns the bit wires of the integer, least significant first.
func (x *Int) BitsLE() []*boolean.Bool {
	bits := make([]*boolean.Bool, len(x.bits))
	copy(bits, x.bits)
	return bits
}

// MSB returns the most significant bit: the sign bit of a signed integer.
func (x *Int) MSB() *boolean.Bool {
	return x.bits[len(x.bits)-1]
}

// AsDual reinterprets the bit pattern under the kind of opposite signedness.
// The wires are shared and no constraints are added.
func (x *Int) AsDual() *Int {
	return &Int{kind: x.kind.Dual(), bits: x.bits}
}

// Value ejects the native value of the integer, folding the bits most
// significant first and reinterpreting the sign bit for signed kinds.
func (x *Int) Value() *big.Int {
	u := new(big.Int)
	for i := len(x.bits) - 1; i >= 0; i-- {
		u.Lsh(u, 1)
		if x.bits[i].Value() {
			u.SetBit(u, 0, 1)
		}
	}
	return x.kind.wrap(u)
}

// Mode ejects the dominant mode over the bits of the integer.
func (x *Int) Mode() circuit.Mode {
	m := circuit.Constant
	for _, b := range x.bits {
		m = m.Combine(b.Mode())
	}
	return m
}

// IsConstant reports whether every bit of the integer is a circuit constant.
func (x *Int) IsConstant() bool {
	for _, b := range x.bits {
		if !b.IsConstant() {
			return false
		}
	}
	return true
}

// lc embeds the integer into the field as the weighted sum of its bits.
func (x *Int) lc() circuit.LinearCombination {
	acc := circuit.Zero()
	var coeff fr.Element
	coeff.SetOne()
	for _, b := range x.bits {
		acc = acc.Add(b.LinearCombination().MulConstant(coeff))
		coeff.Double(&coeff)
	}
	return acc
}

// ToField embeds the integer into a single field element via the weighted
// sum of its bits. No constraints are added.
func (x *Int) ToField() field.Element {
	return field.FromLinearCombination(x.lc())
}

// ToFields returns the field embedding as a one-element slice.
func (x *Int) ToFields() []field.Element {
	return []field.Element{x.ToField()}
}

// sameKind halts construction unless x and y have the same shape.
func (x *Int) sameKind(y *Int, op string) {
	if x.kind != y.kind {
		circuit.Halt("%s requires operands of the same kind, got %s and %s", op, x.kind, y.kind)
	}
}
