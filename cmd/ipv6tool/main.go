package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/cerfical/ipv6net/config"
	"github.com/cerfical/ipv6net/ip6"
	"github.com/cerfical/ipv6net/log"
)

func main() {
	config := config.Load(os.Args)

	logger := log.New(log.WithLevel(config.Log.Level))
	if len(config.Args) == 0 {
		logger.Fatal("no addresses or networks to inspect", nil)
	}

	for _, arg := range config.Args {
		if err := inspect(os.Stdout, arg, config, logger); err != nil {
			logger.Fatal("inspect "+arg, err)
		}
	}
}

func inspect(w io.Writer, arg string, c *config.Config, logger *log.Logger) error {
	if !strings.Contains(arg, "/") {
		a, err := ip6.ParseAddr(arg)
		if err != nil {
			return err
		}

		text, err := a.Format(c.Format)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "address %v\n", text)
		return nil
	}

	n, err := ip6.ParseNetwork(arg)
	if err != nil {
		return err
	}

	text, err := n.Format(c.Format)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "network %v\n", text)
	fmt.Fprintf(w, "  addresses %v\n", n.NumAddrs())
	fmt.Fprintf(w, "  first %v\n", n.First())
	fmt.Fprintf(w, "  last %v\n", n.Last())

	if c.Contains != nil {
		fmt.Fprintf(w, "  contains %v: %v\n", c.Contains, n.Contains(*c.Contains))
	}

	if c.Limit > 0 {
		logger.Verbose("enumerating addresses", log.Fields{
			"network": n.String(),
			"limit":   c.Limit,
		})
		if err := enumerate(w, n, c.Format, c.Limit); err != nil {
			return err
		}
	}
	return nil
}

// enumerate prints up to limit addresses of the network.
func enumerate(w io.Writer, n ip6.Network, format string, limit int64) error {
	r, err := n.Slice(nil, big.NewInt(limit), 1)
	if err != nil {
		return err
	}

	for c := r.Cursor(); ; {
		a, ok := c.Next()
		if !ok {
			break
		}

		text, err := a.Format(format)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %v\n", text)
	}
	return nil
}
