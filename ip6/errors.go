// Package ip6 models IPv6 addresses and networks as immutable 128-bit
// values, with textual parsing, configurable rendering, containment
// testing, and lazy enumeration of network address ranges.
package ip6

import "errors"

// Error kinds reported by the package.
// Wrapped errors carry more context; match with [errors.Is].
var (
	// ErrFormat reports malformed address or network text, or an
	// unknown format specification character.
	ErrFormat = errors.New("malformed text")

	// ErrRange reports an integer value outside [0, 2^128).
	ErrRange = errors.New("value out of range")

	// ErrIndex reports a network index outside the network's address count.
	ErrIndex = errors.New("index out of range")
)
