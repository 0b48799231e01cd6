package ip6

import (
	"fmt"
	"math/big"
)

// An Addr is an immutable IPv6 address, a single unsigned 128-bit value.
// The zero Addr is the all-zeros address "::".
// Addr values are comparable with ==.
type Addr struct {
	v uint128
}

// AddrFromInt makes an [Addr] from its integer value.
// Fails with [ErrRange] if n is not in [0, 2^128).
func AddrFromInt(n *big.Int) (Addr, error) {
	v, ok := uint128FromBig(n)
	if !ok {
		return Addr{}, fmt.Errorf("%w: %v is not a 128-bit value", ErrRange, n)
	}
	return Addr{v}, nil
}

// MustParseAddr is [ParseAddr] for addresses known to be valid.
// It panics on error.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(fmt.Sprintf("ip6.MustParseAddr(%q): %v", s, err))
	}
	return a
}

// Int returns the address as an exact 128-bit integer value.
func (a Addr) Int() *big.Int {
	return a.v.big()
}

// Add returns the address delta positions higher.
// Fails with [ErrRange] if the result leaves [0, 2^128).
// A negative delta moves downward.
func (a Addr) Add(delta *big.Int) (Addr, error) {
	n := a.Int()
	n.Add(n, delta)

	r, err := AddrFromInt(n)
	if err != nil {
		return Addr{}, fmt.Errorf("add %v to %v: %w", delta, a, ErrRange)
	}
	return r, nil
}

// Sub returns the address delta positions lower.
// Fails with [ErrRange] if the result leaves [0, 2^128).
func (a Addr) Sub(delta *big.Int) (Addr, error) {
	n := a.Int()
	n.Sub(n, delta)

	r, err := AddrFromInt(n)
	if err != nil {
		return Addr{}, fmt.Errorf("subtract %v from %v: %w", delta, a, ErrRange)
	}
	return r, nil
}

// And returns the bitwise AND of the address and mask.
// Fails with [ErrRange] if the mask is not in [0, 2^128).
func (a Addr) And(mask *big.Int) (Addr, error) {
	m, ok := uint128FromBig(mask)
	if !ok {
		return Addr{}, fmt.Errorf("%w: mask %v is not a 128-bit value", ErrRange, mask)
	}
	return Addr{a.v.and(m)}, nil
}

// Or returns the bitwise OR of the address and mask.
// Fails with [ErrRange] if the mask is not in [0, 2^128).
func (a Addr) Or(mask *big.Int) (Addr, error) {
	m, ok := uint128FromBig(mask)
	if !ok {
		return Addr{}, fmt.Errorf("%w: mask %v is not a 128-bit value", ErrRange, mask)
	}
	return Addr{a.v.or(m)}, nil
}

// Compare orders addresses by value.
// It returns -1 if a < b, 0 if a == b, and 1 if a > b.
func (a Addr) Compare(b Addr) int {
	return a.v.cmp(b.v)
}

func (a Addr) Less(b Addr) bool {
	return a.v.cmp(b.v) < 0
}

// String renders the address in canonical form: hextets with leading
// zeros trimmed and the longest zero run elided to "::".
func (a Addr) String() string {
	s, err := a.Format("")
	if err != nil {
		// The default spec is always valid
		panic(err)
	}
	return s
}

func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Addr) UnmarshalText(text []byte) error {
	parsed, err := ParseAddr(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
