package ip6

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// A Network is an immutable IPv6 network: a base address and a prefix
// length in [0, 128]. The base address is always aligned to the
// network boundary; construction masks host bits off silently, so
// "2001:db8::1/32" and "2001:db8::/32" denote the same network.
type Network struct {
	base Addr
	bits int
}

// NewNetwork makes a [Network] from a base address and a prefix length.
// Host bits of base are zeroed, not rejected.
// Fails with [ErrRange] if bits is not in [0, 128].
func NewNetwork(base Addr, bits int) (Network, error) {
	if bits < 0 || bits > 128 {
		return Network{}, fmt.Errorf("%w: prefix length %v is not in [0, 128]", ErrRange, bits)
	}
	return Network{
		base: Addr{base.v.and(prefixMask(bits))},
		bits: bits,
	}, nil
}

// NetworkFromInt is [NewNetwork] for a base address given as an integer.
func NetworkFromInt(n *big.Int, bits int) (Network, error) {
	base, err := AddrFromInt(n)
	if err != nil {
		return Network{}, err
	}
	return NewNetwork(base, bits)
}

// ParseNetwork parses a network from its "<address>/<prefix-length>"
// textual form. Fails with [ErrFormat] if the text is malformed and
// with [ErrRange] if the prefix length is not in [0, 128].
func ParseNetwork(s string) (Network, error) {
	addrText, bitsText, ok := strings.Cut(s, "/")
	if !ok {
		return Network{}, fmt.Errorf("parse network %q: %w: no prefix length", s, ErrFormat)
	}

	base, err := ParseAddr(addrText)
	if err != nil {
		return Network{}, fmt.Errorf("parse network %q: %w", s, err)
	}

	bits, err := parsePrefixLen(bitsText)
	if err != nil {
		return Network{}, fmt.Errorf("parse network %q: %w", s, err)
	}
	return NewNetwork(base, bits)
}

// MustParseNetwork is [ParseNetwork] for networks known to be valid.
// It panics on error.
func MustParseNetwork(s string) Network {
	n, err := ParseNetwork(s)
	if err != nil {
		panic(fmt.Sprintf("ip6.MustParseNetwork(%q): %v", s, err))
	}
	return n
}

func parsePrefixLen(s string) (int, error) {
	// Reject signs and other decorations strconv would allow
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: prefix length %q is not decimal", ErrFormat, s)
		}
	}

	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: prefix length %q is not decimal", ErrFormat, s)
	}
	return bits, nil
}

// BaseAddr returns the first address of the network.
func (n Network) BaseAddr() Addr { return n.base }

// Bits returns the prefix length.
func (n Network) Bits() int { return n.bits }

// Mask returns the prefix mask: the top Bits bits set.
func (n Network) Mask() Addr {
	return Addr{prefixMask(n.bits)}
}

// HostMask returns the complement of [Network.Mask], selecting the
// host portion of an address.
func (n Network) HostMask() Addr {
	return Addr{prefixMask(n.bits).not()}
}

// First returns the lowest address of the network, its base address.
func (n Network) First() Addr { return n.base }

// Last returns the highest address of the network.
func (n Network) Last() Addr {
	return Addr{n.base.v.or(prefixMask(n.bits).not())}
}

// NumAddrs returns the exact number of addresses in the network,
// 2^(128-Bits). The count does not fit a machine word for small
// prefix lengths, hence the big.Int.
func (n Network) NumAddrs() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(128-n.bits))
}

// Contains reports whether a belongs to the network.
func (n Network) Contains(a Addr) bool {
	return a.v.and(prefixMask(n.bits)) == n.base.v
}

// Get returns the k-th address of the network, counting from the base
// address. A negative k counts from the end, -1 being the last
// address. Fails with [ErrIndex] if k is outside the network after
// normalization.
func (n Network) Get(k *big.Int) (Addr, error) {
	num := n.NumAddrs()

	i := new(big.Int).Set(k)
	if i.Sign() < 0 {
		i.Add(i, num)
	}
	if i.Sign() < 0 || i.Cmp(num) >= 0 {
		return Addr{}, fmt.Errorf("%w: index %v in a network of %v addresses", ErrIndex, k, num)
	}

	// Cannot wrap: the base is aligned and i < 2^(128-bits)
	off, _ := uint128FromBig(i)
	v, _ := n.base.v.add(off)
	return Addr{v}, nil
}

// String renders the network in canonical form, the base address with
// leading zeros trimmed and the longest zero run elided, then the
// prefix length.
func (n Network) String() string {
	s, err := n.Format("")
	if err != nil {
		panic(err)
	}
	return s
}

func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
