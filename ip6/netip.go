package ip6

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// AddrFromNetIP converts a [netip.Addr] to an [Addr].
// Fails with [ErrFormat] on IPv4 and IPv4-mapped addresses.
func AddrFromNetIP(ip netip.Addr) (Addr, error) {
	if !ip.Is6() || ip.Is4In6() {
		return Addr{}, fmt.Errorf("%w: %v is not an IPv6 address", ErrFormat, ip)
	}
	return Addr{uint128FromBytes(ip.As16())}, nil
}

// NetIP converts the address to a [netip.Addr].
func (a Addr) NetIP() netip.Addr {
	return netip.AddrFrom16(a.v.bytes())
}

// NetworkFromPrefix converts a [netip.Prefix] to a [Network].
// Fails with [ErrFormat] on IPv4 prefixes and invalid prefixes.
func NetworkFromPrefix(p netip.Prefix) (Network, error) {
	if !p.IsValid() {
		return Network{}, fmt.Errorf("%w: invalid prefix %v", ErrFormat, p)
	}

	base, err := AddrFromNetIP(p.Addr())
	if err != nil {
		return Network{}, err
	}
	return NewNetwork(base, p.Bits())
}

// Prefix converts the network to a [netip.Prefix].
func (n Network) Prefix() netip.Prefix {
	return netip.PrefixFrom(n.base.NetIP(), n.bits)
}

// IPRange returns the network as a [netipx.IPRange] spanning its
// first and last addresses.
func (n Network) IPRange() netipx.IPRange {
	return netipx.IPRangeFrom(n.First().NetIP(), n.Last().NetIP())
}
