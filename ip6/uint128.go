package ip6

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// uint128 is an unsigned 128-bit integer stored as two 64-bit words,
// hi holding the most significant bits.
type uint128 struct {
	hi, lo uint64
}

func uint128FromBytes(b [16]byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// uint128FromBig converts n to a uint128.
// Reports false if n is negative or does not fit in 128 bits.
func uint128FromBig(n *big.Int) (uint128, bool) {
	if n.Sign() < 0 || n.BitLen() > 128 {
		return uint128{}, false
	}
	var b [16]byte
	n.FillBytes(b[:])
	return uint128FromBytes(b), true
}

func (u uint128) big() *big.Int {
	b := u.bytes()
	return new(big.Int).SetBytes(b[:])
}

func (u uint128) bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}

// hextet returns the i-th 16-bit group of u, counting from the most
// significant.
func (u uint128) hextet(i int) uint16 {
	if i < 4 {
		return uint16(u.hi >> ((3 - i) * 16))
	}
	return uint16(u.lo >> ((7 - i) * 16))
}

func (u uint128) and(v uint128) uint128 {
	return uint128{u.hi & v.hi, u.lo & v.lo}
}

func (u uint128) or(v uint128) uint128 {
	return uint128{u.hi | v.hi, u.lo | v.lo}
}

func (u uint128) not() uint128 {
	return uint128{^u.hi, ^u.lo}
}

// add returns u + v and a carry-out bit signalling wraparound.
func (u uint128) add(v uint128) (uint128, uint64) {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, carry := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi, lo}, carry
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}
		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}
		return 1
	}
	return 0
}

// prefixMask returns a uint128 with the top n bits set, 0 <= n <= 128.
func prefixMask(n int) uint128 {
	if n <= 0 {
		return uint128{}
	}
	if n <= 64 {
		return uint128{hi: ^uint64(0) << (64 - n)}
	}
	return uint128{hi: ^uint64(0), lo: ^uint64(0) << (128 - n)}
}
