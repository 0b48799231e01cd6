package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cerfical/ipv6net/ip6"
	"github.com/cerfical/ipv6net/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defFormat   = ""
	defLimit    = 16
	defLogLevel = log.Info
)

func Load(args []string) *Config {
	progName := getProgramName(args)

	flags := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Printf("Usage:\n")
		fmt.Printf("  %v [options] <address|network> ...\n\n", progName)
		fmt.Printf("Options:\n")
		flags.PrintDefaults()
	}
	if err := parseFlags(flags, args); err != nil {
		printErrorAndExit(flags, err)
	}

	rawConfig, err := parseRawConfig(flags)
	if err != nil {
		printErrorAndExit(flags, err)
	}

	config := rawConfig.ToConfig()
	config.Args = flags.Args()
	return config
}

func printErrorAndExit(f *pflag.FlagSet, err error) {
	fmt.Printf("Error: %v\n\n", err)
	f.Usage()
	os.Exit(1)
}

func parseRawConfig(f *pflag.FlagSet) (*rawConfig, error) {
	v := viper.New()

	// Bind command-line flags to their corresponding values from config file
	configNames := []string{"format", "limit", "contains", "log.level"}
	for _, name := range configNames {
		kebabCasedName := strings.ReplaceAll(name, ".", "-")
		if err := v.BindPFlag(name, f.Lookup(kebabCasedName)); err != nil {
			panic(fmt.Errorf("bind flag: %w", err))
		}
	}

	v.SetConfigFile(f.Lookup("config-file").Value.String())
	if err := v.ReadInConfig(); err != nil {
		// Make the configuration file optional
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	options := []viper.DecoderConfigOption{
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
		)),

		func(c *mapstructure.DecoderConfig) {
			c.IgnoreUntaggedFields = true
		},
	}

	var config rawConfig
	if err := v.UnmarshalExact(&config, options...); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	return &config, nil
}

func parseFlags(f *pflag.FlagSet, args []string) error {
	// Flags shared with options from a configuration file
	f.String("format", defFormat, "``format specification for rendered addresses")
	f.Int64("limit", defLimit, "``maximum number of addresses to enumerate per network")
	f.Var(&addrValue{}, "contains", "``address to test networks for membership")

	logLevel := logLevelValue(defLogLevel)
	f.Var(&logLevel, "log-level", "``severity level of logging messages")

	help := f.Bool("help", false, "``display help message")
	f.String("config-file", "", "``configuration file")

	if err := f.Parse(args[1:]); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *help {
		f.Usage()
		os.Exit(2)
	}
	return nil
}

func getProgramName(args []string) string {
	progPath := args[0]
	return strings.TrimSuffix(
		filepath.Base(progPath),
		filepath.Ext(progPath),
	)
}

type Config struct {
	// Format is a format specification to render addresses with.
	Format string

	// Limit caps the number of addresses enumerated per network.
	Limit int64

	// Contains is an optional address to test each network argument for.
	Contains *ip6.Addr

	// Args are the addresses and networks to inspect.
	Args []string

	Log struct {
		Level log.Level
	}
}

type rawConfig struct {
	Format string `mapstructure:"format"`

	Limit int64 `mapstructure:"limit"`

	Contains addrValue `mapstructure:"contains"`

	Log struct {
		Level logLevelValue `mapstructure:"level"`
	} `mapstructure:"log"`
}

func (c *rawConfig) ToConfig() *Config {
	var config Config

	config.Format = c.Format
	config.Limit = c.Limit
	config.Log.Level = log.Level(c.Log.Level)

	if c.Contains.ok {
		addr := c.Contains.addr
		config.Contains = &addr
	}

	return &config
}

type addrValue struct {
	addr ip6.Addr
	ok   bool
}

func (v *addrValue) Set(s string) error {
	return v.UnmarshalText([]byte(s))
}

func (v *addrValue) UnmarshalText(text []byte) error {
	// An empty value means the option is unset
	if len(text) == 0 {
		*v = addrValue{}
		return nil
	}

	if err := v.addr.UnmarshalText(text); err != nil {
		return err
	}
	v.ok = true
	return nil
}

func (v *addrValue) String() string {
	if !v.ok {
		return ""
	}
	return v.addr.String()
}

func (v *addrValue) Type() string {
	return ""
}

type logLevelValue log.Level

func (v *logLevelValue) Set(s string) error {
	return (*log.Level)(v).UnmarshalText([]byte(s))
}

func (v *logLevelValue) UnmarshalText(text []byte) error {
	return v.Set(string(text))
}

func (v *logLevelValue) String() string {
	return (*log.Level)(v).String()
}

func (v *logLevelValue) Type() string {
	return ""
}
