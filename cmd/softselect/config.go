package main

import (
	"flag"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// @Author KHighness
// @Update 2026-10-18

// config of a selection run, read from TOML and overridden by flags.
type config struct {
	InverseEpsilon int    `toml:"inverse_epsilon"`
	Elements       int    `toml:"elements"`
	K              int    `toml:"k"`
	Bound          int    `toml:"bound"`
	Seed           uint64 `toml:"seed"`
	Dump           bool   `toml:"dump"`
	LogLevel       string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		InverseEpsilon: 8,
		Elements:       10000,
		K:              100,
		Bound:          1000000,
		Seed:           1,
		LogLevel:       "info",
	}
}

// parseConfig applies the TOML file named by -c, then every flag given explicitly.
func parseConfig(args []string) (config, error) {
	cfg := defaultConfig()
	flags := config{}

	fs := flag.NewFlagSet("softselect", flag.ContinueOnError)
	path := fs.String("c", "", "TOML configuration file")
	fs.IntVar(&flags.InverseEpsilon, "e", cfg.InverseEpsilon, "Inverse epsilon of the soft heap")
	fs.IntVar(&flags.Elements, "n", cfg.Elements, "Number of generated elements")
	fs.IntVar(&flags.K, "k", cfg.K, "Number of elements to select")
	fs.IntVar(&flags.Bound, "b", cfg.Bound, "Generated elements lie in [0, b)")
	fs.Uint64Var(&flags.Seed, "s", cfg.Seed, "Random seed")
	fs.BoolVar(&flags.Dump, "dump", cfg.Dump, "Dump the soft heap after selecting")
	fs.StringVar(&flags.LogLevel, "l", cfg.LogLevel, "Logging level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if *path != "" {
		if _, err := toml.DecodeFile(*path, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "cannot read config %s", *path)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "e":
			cfg.InverseEpsilon = flags.InverseEpsilon
		case "n":
			cfg.Elements = flags.Elements
		case "k":
			cfg.K = flags.K
		case "b":
			cfg.Bound = flags.Bound
		case "s":
			cfg.Seed = flags.Seed
		case "dump":
			cfg.Dump = flags.Dump
		case "l":
			cfg.LogLevel = flags.LogLevel
		}
	})
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch {
	case c.InverseEpsilon < 1:
		return errors.Errorf("inverse_epsilon must be at least 1, got %d", c.InverseEpsilon)
	case c.Elements < 0:
		return errors.Errorf("elements must not be negative, got %d", c.Elements)
	case c.K < 0 || c.K > c.Elements:
		return errors.Errorf("k must lie in [0, %d], got %d", c.Elements, c.K)
	case c.Bound < 1:
		return errors.Errorf("bound must be positive, got %d", c.Bound)
	}
	return nil
}
