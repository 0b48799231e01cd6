package ip6_test

import (
	"math/big"
	"testing"

	"github.com/cerfical/ipv6net/ip6"
	"github.com/stretchr/testify/suite"
)

func TestNetwork(t *testing.T) {
	suite.Run(t, new(NetworkTest))
}

type NetworkTest struct {
	suite.Suite
}

func (t *NetworkTest) TestParse() {
	t.Run("parses an address-prefix pair", func() {
		n, err := ip6.ParseNetwork("2001:db8::/32")
		t.Require().NoError(err)

		t.Equal(ip6.MustParseAddr("2001:db8::"), n.BaseAddr())
		t.Equal(32, n.Bits())
	})

	t.Run("masks host bits off instead of rejecting them", func() {
		n, err := ip6.ParseNetwork("2001:db8::1234/32")
		t.Require().NoError(err)

		t.Equal(ip6.MustParseAddr("2001:db8::"), n.BaseAddr())
	})

	tests := map[string]struct {
		input string
		err   error
	}{
		"rejects a missing prefix length": {
			input: "2001:db8::",
			err:   ip6.ErrFormat,
		},

		"rejects an empty prefix length": {
			input: "2001:db8::/",
			err:   ip6.ErrFormat,
		},

		"rejects a non-decimal prefix length": {
			input: "2001:db8::/ab",
			err:   ip6.ErrFormat,
		},

		"rejects a signed prefix length": {
			input: "2001:db8::/+32",
			err:   ip6.ErrFormat,
		},

		"rejects a prefix length over 128": {
			input: "2001:db8::/129",
			err:   ip6.ErrRange,
		},

		"rejects a malformed address part": {
			input: "2001:db8/32",
			err:   ip6.ErrFormat,
		},
	}

	for name, test := range tests {
		t.Run(name, func() {
			_, err := ip6.ParseNetwork(test.input)
			t.ErrorIs(err, test.err)
		})
	}
}

func (t *NetworkTest) TestNew() {
	t.Run("masks host bits off the base address", func() {
		n, err := ip6.NewNetwork(ip6.MustParseAddr("2001:db8::1"), 32)
		t.Require().NoError(err)

		t.Equal(ip6.MustParseAddr("2001:db8::"), n.BaseAddr())
	})

	t.Run("accepts the full address as a /128 network", func() {
		a := ip6.MustParseAddr("2001:db8::1")

		n, err := ip6.NewNetwork(a, 128)
		t.Require().NoError(err)

		t.Equal(a, n.BaseAddr())
		t.Equal(big.NewInt(1), n.NumAddrs())
	})

	t.Run("rejects a negative prefix length", func() {
		_, err := ip6.NewNetwork(ip6.Addr{}, -1)
		t.ErrorIs(err, ip6.ErrRange)
	})

	t.Run("makes a network from an integer base address", func() {
		base := ip6.MustParseAddr("2001:db8::").Int()

		n, err := ip6.NetworkFromInt(base, 32)
		t.Require().NoError(err)

		t.Equal(ip6.MustParseAddr("2001:db8::"), n.BaseAddr())
	})
}

func (t *NetworkTest) TestMasks() {
	n := ip6.MustParseNetwork("2001:db8::/32")

	wantMask := new(big.Int).Lsh(new(big.Int).SetUint64(0xffffffff), 96)
	t.Equal(wantMask, n.Mask().Int())

	wantHostMask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1))
	t.Equal(wantHostMask, n.HostMask().Int())

	t.Run("covers the whole address space at /0", func() {
		n := ip6.MustParseNetwork("::/0")
		t.Equal(big.NewInt(0), n.Mask().Int())
		t.Equal(new(big.Int).Lsh(big.NewInt(1), 128), n.NumAddrs())
	})
}

func (t *NetworkTest) TestNumAddrs() {
	want := new(big.Int).Lsh(big.NewInt(1), 96)
	t.Equal(want, ip6.MustParseNetwork("2001:db8::/32").NumAddrs())
}

func (t *NetworkTest) TestContains() {
	n := ip6.MustParseNetwork("2001:db8::/32")

	tests := map[string]struct {
		addr string
		want bool
	}{
		"contains its base address":        {"2001:db8::", true},
		"contains an interior address":     {"2001:db8:dead:beef::1", true},
		"contains its last address":        {"2001:db8:ffff:ffff:ffff:ffff:ffff:ffff", true},
		"excludes the preceding address":   {"2001:db7:ffff:ffff:ffff:ffff:ffff:ffff", false},
		"excludes the following address":   {"2001:db9::", false},
		"excludes an unrelated address":    {"fe80::1", false},
	}

	for name, test := range tests {
		t.Run(name, func() {
			t.Equal(test.want, n.Contains(ip6.MustParseAddr(test.addr)))
		})
	}

	t.Run("every indexed address is contained", func() {
		n := ip6.MustParseNetwork("2001:db8::/126")
		num := n.NumAddrs().Int64()

		for i := int64(0); i < num; i++ {
			a, err := n.Get(big.NewInt(i))
			t.Require().NoError(err)
			t.True(n.Contains(a))
		}
	})
}

func (t *NetworkTest) TestGet() {
	n := ip6.MustParseNetwork("2001:db8::/32")

	t.Run("returns the base address at index 0", func() {
		a, err := n.Get(big.NewInt(0))
		t.Require().NoError(err)
		t.Equal(n.BaseAddr(), a)
	})

	t.Run("offsets the base address by the index", func() {
		a, err := n.Get(big.NewInt(123456789))
		t.Require().NoError(err)

		want := new(big.Int).Add(n.BaseAddr().Int(), big.NewInt(123456789))
		t.Equal(want, a.Int())
	})

	t.Run("counts negative indices from the end", func() {
		a, err := n.Get(big.NewInt(-1))
		t.Require().NoError(err)
		t.Equal(n.Last(), a)
	})

	t.Run("fails on an index past the end", func() {
		_, err := n.Get(n.NumAddrs())
		t.ErrorIs(err, ip6.ErrIndex)
	})

	t.Run("fails on a negative index past the start", func() {
		k := new(big.Int).Neg(n.NumAddrs())
		k.Sub(k, big.NewInt(1))

		_, err := n.Get(k)
		t.ErrorIs(err, ip6.ErrIndex)
	})
}

func (t *NetworkTest) TestFirstLast() {
	n := ip6.MustParseNetwork("2001:db8::/32")

	t.Equal(ip6.MustParseAddr("2001:db8::"), n.First())
	t.Equal(ip6.MustParseAddr("2001:db8:ffff:ffff:ffff:ffff:ffff:ffff"), n.Last())
}

func (t *NetworkTest) TestString() {
	tests := map[string]struct {
		input string
		want  string
	}{
		"renders the canonical compressed form": {
			input: "2001:0db8:0000:0000:0000:0000:0000:0000/32",
			want:  "2001:db8::/32",
		},

		"renders a masked base address": {
			input: "2001:db8::1234/32",
			want:  "2001:db8::/32",
		},

		"renders the zero network": {
			input: "::/0",
			want:  "::/0",
		},
	}

	for name, test := range tests {
		t.Run(name, func() {
			t.Equal(test.want, ip6.MustParseNetwork(test.input).String())
		})
	}
}

func (t *NetworkTest) TestMarshalText() {
	t.Run("round-trips through its text form", func() {
		n := ip6.MustParseNetwork("2001:db8::/32")

		text, err := n.MarshalText()
		t.Require().NoError(err)

		var got ip6.Network
		t.Require().NoError(got.UnmarshalText(text))

		t.Equal(n, got)
	})

	t.Run("reports an error on invalid input", func() {
		var n ip6.Network
		t.ErrorIs(n.UnmarshalText([]byte("2001:db8::")), ip6.ErrFormat)
	})
}
