package integers

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/consensys/circuits/circuit"
)

var (
	// ErrSyntax reports a malformed integer literal.
	ErrSyntax = errors.New("invalid integer literal")
	// ErrRange reports a literal outside the native range of its kind.
	ErrRange = errors.New("value out of range")
)

// Parse reads an integer literal of the form
//
//	-? digits ( _ digits )* <kind> ( . <mode> )?
//
// e.g. "42u8", "-1_000i32.private". The mode defaults to constant. The
// returned integer is injected into the current environment, so
// Parse(x.String()) reconstructs x exactly.
func Parse(s string) (*Int, error) {
	rest := s
	neg := strings.HasPrefix(rest, "-")
	if neg {
		rest = rest[1:]
	}
	i := 0
	for i < len(rest) && (isDigit(rest[i]) || (rest[i] == '_' && i > 0)) {
		i++
	}
	if i == 0 || !isDigit(rest[0]) {
		return nil, fmt.Errorf("%w: %q has no digits", ErrSyntax, s)
	}
	digits := strings.ReplaceAll(rest[:i], "_", "")
	rest = rest[i:]

	kind, n := matchKind(rest)
	if n == 0 {
		return nil, fmt.Errorf("%w: %q has no integer type suffix", ErrSyntax, s)
	}
	rest = rest[n:]

	mode := circuit.Constant
	if strings.HasPrefix(rest, ".") {
		var err error
		if mode, err = circuit.ParseMode(rest[1:]); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, s, err)
		}
		rest = ""
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: trailing %q in %q", ErrSyntax, rest, s)
	}

	if neg {
		digits = "-" + digits
	}
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !kind.inRange(value) {
		return nil, fmt.Errorf("%w: %s does not fit %s", ErrRange, value, kind)
	}
	return New(mode, kind, value), nil
}

// matchKind finds the longest kind suffix at the start of s.
func matchKind(s string) (Kind, int) {
	for n := 4; n >= 2; n-- {
		if len(s) < n {
			continue
		}
		if k, ok := KindFromName(s[:n]); ok {
			return k, n
		}
	}
	return 0, 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// String renders the integer as value, type suffix and mode,
// e.g. "-5i16.private".
func (x *Int) String() string {
	return fmt.Sprintf("%s%s.%s", x.Value(), x.kind, x.Mode())
}

// Format implements fmt.Formatter: %d prints the bare value, every other
// verb the full form of [Int.String].
func (x *Int) Format(f fmt.State, verb rune) {
	if verb == 'd' {
		fmt.Fprintf(f, "%d", x.Value())
		return
	}
	io.WriteString(f, x.String())
}
