package ip6

import (
	"fmt"
	"math/big"
)

// Slice returns a lazy view over a sub-range of the network's
// addresses, selected the way a slice selects list elements: nil
// bounds mean "from the edge", negative bounds count from the end,
// out-of-range bounds clamp instead of failing, and a negative step
// walks the range backwards. Fails with [ErrRange] if step is zero.
//
// The view is a virtual sequence; no addresses are materialized no
// matter how large the range is.
func (n Network) Slice(start, stop *big.Int, step int64) (*Range, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: slice step cannot be zero", ErrRange)
	}

	num := n.NumAddrs()

	// Clamping bounds for the index normalization below: a forward
	// slice runs over [0, num], a backward one over [-1, num-1].
	lower, upper := big.NewInt(0), num
	defStart, defStop := lower, upper
	if step < 0 {
		lower = big.NewInt(-1)
		upper = new(big.Int).Sub(num, big.NewInt(1))
		defStart, defStop = upper, lower
	}

	first := new(big.Int).Set(defStart)
	if start != nil {
		first = clampIndex(start, num, lower, upper)
	}
	last := new(big.Int).Set(defStop)
	if stop != nil {
		last = clampIndex(stop, num, lower, upper)
	}

	return &Range{
		base:  n.base,
		start: first,
		stop:  last,
		step:  big.NewInt(step),
	}, nil
}

// Addrs returns a lazy view over every address of the network in
// ascending order.
func (n Network) Addrs() *Range {
	r, err := n.Slice(nil, nil, 1)
	if err != nil {
		panic(err)
	}
	return r
}

// clampIndex normalizes a slice bound: a negative value counts back
// from num, and the result is clamped to [lower, upper].
func clampIndex(k, num, lower, upper *big.Int) *big.Int {
	i := new(big.Int).Set(k)
	if i.Sign() < 0 {
		i.Add(i, num)
	}
	if i.Cmp(lower) < 0 {
		i.Set(lower)
	}
	if i.Cmp(upper) > 0 {
		i.Set(upper)
	}
	return i
}

// A Range is a lazy, restartable view over a contiguous index range
// of a network's addresses. Each [Range.Cursor] call starts a fresh
// pass; the view itself never changes once created.
type Range struct {
	base        Addr
	start, stop *big.Int
	step        *big.Int
}

// Len returns the number of addresses the range yields.
func (r *Range) Len() *big.Int {
	span := new(big.Int).Sub(r.stop, r.start)
	if span.Sign()*r.step.Sign() <= 0 {
		return big.NewInt(0)
	}

	// ceil(|span| / |step|)
	span.Abs(span)
	step := new(big.Int).Abs(r.step)
	span.Add(span, step)
	span.Sub(span, big.NewInt(1))
	return span.Div(span, step)
}

// Cursor starts a new pass over the range.
func (r *Range) Cursor() *Cursor {
	return &Cursor{
		next: new(big.Int).Add(r.base.Int(), r.start),
		stop: new(big.Int).Add(r.base.Int(), r.stop),
		step: r.step,
	}
}

// A Cursor is a single pass over a [Range]. It is advanced by
// [Cursor.Next] and cannot be rewound; start another pass with
// [Range.Cursor].
type Cursor struct {
	next, stop *big.Int
	step       *big.Int
}

// Next returns the next address of the pass.
// It reports false once the pass is exhausted.
func (c *Cursor) Next() (Addr, bool) {
	if c.step.Sign() > 0 && c.next.Cmp(c.stop) >= 0 {
		return Addr{}, false
	}
	if c.step.Sign() < 0 && c.next.Cmp(c.stop) <= 0 {
		return Addr{}, false
	}

	v, _ := uint128FromBig(c.next)
	c.next.Add(c.next, c.step)
	return Addr{v}, true
}
