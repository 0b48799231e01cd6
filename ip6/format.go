package ip6

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders the address under a format specification combining
// two independent axes:
//
//   - hextet padding: 'p' pads every hextet to 4 hex digits,
//     't' trims leading zeros (the default);
//   - zero runs: 'c' compresses the longest run of two or more zero
//     hextets to "::" (the default), 'e' expands all 8 hextets.
//
// The aliases 's' (short) and 'l' (long) stand for "tc" and "pe".
// An empty specification renders the canonical "tc" form.
// Fails with [ErrFormat] on unknown specification characters.
func (a Addr) Format(spec string) (string, error) {
	pad, compress := false, true
	for _, c := range spec {
		switch c {
		case 'p':
			pad = true
		case 't':
			pad = false
		case 'c':
			compress = true
		case 'e':
			compress = false
		case 's':
			pad, compress = false, true
		case 'l':
			pad, compress = true, false
		default:
			return "", fmt.Errorf("%w: unknown format specification character %q", ErrFormat, c)
		}
	}
	return a.render(pad, compress), nil
}

// Format renders the network as its base address under spec, followed
// by "/" and the decimal prefix length.
func (n Network) Format(spec string) (string, error) {
	s, err := n.base.Format(spec)
	if err != nil {
		return "", err
	}
	return s + "/" + strconv.Itoa(n.bits), nil
}

func (a Addr) render(pad, compress bool) string {
	hextet := func(i int) string {
		h := uint64(a.v.hextet(i))
		if pad {
			return fmt.Sprintf("%04x", h)
		}
		return strconv.FormatUint(h, 16)
	}

	start, length := 0, 0
	if compress {
		start, length = a.longestZeroRun()
	}
	if length < 2 {
		// Nothing to elide
		parts := make([]string, 8)
		for i := range parts {
			parts[i] = hextet(i)
		}
		return strings.Join(parts, ":")
	}

	var left, right []string
	for i := 0; i < start; i++ {
		left = append(left, hextet(i))
	}
	for i := start + length; i < 8; i++ {
		right = append(right, hextet(i))
	}
	return strings.Join(left, ":") + "::" + strings.Join(right, ":")
}

// longestZeroRun locates the longest run of consecutive zero hextets,
// preferring the leftmost on ties.
func (a Addr) longestZeroRun() (start, length int) {
	runStart := -1
	for i := 0; i <= 8; i++ {
		if i < 8 && a.v.hextet(i) == 0 {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 && i-runStart > length {
			start, length = runStart, i-runStart
		}
		runStart = -1
	}
	return start, length
}
