package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/leapmux/tstamp/internal/config"
	"github.com/leapmux/tstamp/internal/logging"
)

// loadConfig parses args for the named subcommand, loads and validates the
// configuration, applies its log level and returns the positional args.
func loadConfig(name string, args []string) (*config.Config, []string, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	config.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("validate config: %w", err)
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logging.SetLevel(level)
	return cfg, fs.Args(), nil
}
