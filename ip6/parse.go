package ip6

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddr parses an IPv6 address from its textual form: up to 8
// colon-separated hextets of 1-4 hex digits, with at most one "::"
// standing for the zero hextets needed to pad the address to 8 groups.
// Fails with [ErrFormat] on any grammar violation.
func ParseAddr(s string) (Addr, error) {
	hextets, err := splitHextets(s)
	if err != nil {
		return Addr{}, fmt.Errorf("parse address %q: %w", s, err)
	}

	var v uint128
	for i, h := range hextets {
		if i < 4 {
			v.hi |= uint64(h) << ((3 - i) * 16)
		} else {
			v.lo |= uint64(h) << ((7 - i) * 16)
		}
	}
	return Addr{v}, nil
}

// splitHextets expands s into exactly 8 hextet values.
func splitHextets(s string) ([8]uint16, error) {
	var hextets [8]uint16
	if s == "" {
		return hextets, fmt.Errorf("%w: empty address", ErrFormat)
	}

	head, tail, elided := strings.Cut(s, "::")
	if !elided {
		// No "::": exactly 8 explicit hextets
		parts := strings.Split(s, ":")
		if len(parts) != 8 {
			return hextets, fmt.Errorf("%w: expected 8 hextets, got %v", ErrFormat, len(parts))
		}
		for i, p := range parts {
			h, err := parseHextet(p)
			if err != nil {
				return hextets, err
			}
			hextets[i] = h
		}
		return hextets, nil
	}

	if strings.Contains(tail, "::") {
		return hextets, fmt.Errorf("%w: address can only have one \"::\"", ErrFormat)
	}

	front, err := splitExplicit(head)
	if err != nil {
		return hextets, err
	}
	back, err := splitExplicit(tail)
	if err != nil {
		return hextets, err
	}

	// The "::" must stand for at least one zero hextet
	if len(front)+len(back) >= 8 {
		return hextets, fmt.Errorf("%w: \"::\" in an address that already has %v hextets", ErrFormat, len(front)+len(back))
	}

	copy(hextets[:], front)
	copy(hextets[8-len(back):], back)
	return hextets, nil
}

// splitExplicit parses one side of a "::" as a colon-separated hextet list.
func splitExplicit(s string) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ":")
	hextets := make([]uint16, len(parts))
	for i, p := range parts {
		h, err := parseHextet(p)
		if err != nil {
			return nil, err
		}
		hextets[i] = h
	}
	return hextets, nil
}

func parseHextet(s string) (uint16, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty hextet", ErrFormat)
	}
	if len(s) > 4 {
		return 0, fmt.Errorf("%w: hextet %q must be 4 digits or less", ErrFormat, s)
	}

	h, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: hextet %q is not hexadecimal", ErrFormat, s)
	}
	return uint16(h), nil
}
