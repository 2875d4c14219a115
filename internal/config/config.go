// Package config loads tstamp's runtime configuration from defaults, an
// optional YAML file, TSTAMP_* environment variables and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/leapmux/tstamp/internal/logging"
	"github.com/leapmux/tstamp/timezone"
)

// EnvPrefix prefixes every environment variable tstamp reads.
const EnvPrefix = "TSTAMP_"

// Input encodings accepted by convert.
var InputFormats = []string{"rfc3339", "date", "secs", "millis", "millis-tz", "millis-new-york"}

// Output encodings produced by parse and convert.
var OutputFormats = []string{"rfc3339", "rfc3339-nanos", "secs", "millis", "millis-new-york"}

// Config holds tstamp's runtime configuration.
type Config struct {
	LogLevel     string `koanf:"log_level"`
	InputFormat  string `koanf:"input_format"`
	OutputFormat string `koanf:"output_format"`
	Zone         string `koanf:"zone"` // fixed-offset zone for millis-tz input
	Input        string `koanf:"input"`
	Output       string `koanf:"output"`
	Strict       bool   `koanf:"strict"`
	Relative     bool   `koanf:"relative"`
	MetricsFile  string `koanf:"metrics_file"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log_level":     "info",
		"input_format":  "rfc3339",
		"output_format": "rfc3339",
		"zone":          timezone.UTC.Name,
		"input":         "-",
		"output":        "-",
		"strict":        false,
		"relative":      false,
		"metrics_file":  "",
	}
}

// DefineFlags registers the configuration flags on fs.
func DefineFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML config file (default "+DefaultPath()+" when present)")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("input-format", "rfc3339", "input encoding: "+strings.Join(InputFormats, ", "))
	fs.String("output-format", "rfc3339", "output encoding: "+strings.Join(OutputFormats, ", "))
	fs.String("zone", timezone.UTC.Name, "fixed-offset zone for millis-tz input")
	fs.String("input", "-", "input file, - for stdin; zstd input is detected")
	fs.String("output", "-", "output file, - for stdout; .zst files are compressed")
	fs.Bool("strict", false, "stop at the first value that fails to convert")
	fs.Bool("relative", false, "also print how long ago each parsed instant was")
	fs.String("metrics-file", "", "write Prometheus metrics to this file when done")
}

// DefaultPath returns the config file read when --config is not given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "tstamp", "config.yaml")
	}
	return filepath.Join(home, ".config", "tstamp", "config.yaml")
}

// Load builds the configuration. fs must have been parsed; only flags the
// user set override the file and environment.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path, explicit := configPath(fs)
	if path != "" {
		err := k.Load(file.Provider(path), koanfyaml.Parser())
		switch {
		case err == nil:
		case !explicit && errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	changed := map[string]interface{}{}
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		changed[strings.ReplaceAll(f.Name, "-", "_")] = f.Value.String()
	})
	if err := k.Load(confmap.Provider(changed, "."), nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &c, nil
}

func configPath(fs *pflag.FlagSet) (string, bool) {
	if f := fs.Lookup("config"); f != nil && f.Changed {
		return f.Value.String(), true
	}
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p, true
	}
	return DefaultPath(), false
}

func envKey(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if !slices.Contains(InputFormats, c.InputFormat) {
		return fmt.Errorf("unknown input format %q", c.InputFormat)
	}
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	if _, ok := timezone.Lookup(c.Zone); !ok {
		return fmt.Errorf("unknown fixed-offset zone %q", c.Zone)
	}
	return nil
}

// FixedZone returns the configured fixed-offset zone. Call Validate first.
func (c *Config) FixedZone() timezone.Zone {
	z, _ := timezone.Lookup(c.Zone)
	return z
}
