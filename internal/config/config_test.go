package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapmux/tstamp/internal/config"
	"github.com/leapmux/tstamp/timezone"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	// Keep the user's own config file out of the way.
	t.Setenv("HOME", t.TempDir())
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.DefineFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "rfc3339", c.InputFormat)
	assert.Equal(t, "rfc3339", c.OutputFormat)
	assert.Equal(t, "UTC", c.Zone)
	assert.Equal(t, "-", c.Input)
	assert.False(t, c.Strict)
	require.NoError(t, c.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "input_format: millis\noutput_format: secs\nzone: EST\nstrict: true\n")
	fs := newFlags(t, "--config", path, "--output-format", "millis")
	t.Setenv("TSTAMP_INPUT_FORMAT", "secs")

	c, err := config.Load(fs)
	require.NoError(t, err)

	assert.Equal(t, "secs", c.InputFormat, "environment overrides file")
	assert.Equal(t, "millis", c.OutputFormat, "flag overrides file")
	assert.Equal(t, "EST", c.Zone)
	assert.True(t, c.Strict)
	assert.Equal(t, timezone.EST, c.FixedZone())
}

func TestLoad_BoolFlag(t *testing.T) {
	c, err := config.Load(newFlags(t, "--strict", "--relative"))
	require.NoError(t, err)
	assert.True(t, c.Strict)
	assert.True(t, c.Relative)
}

func TestLoad_DefaultFileOptional(t *testing.T) {
	home := t.TempDir()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.DefineFlags(fs)
	require.NoError(t, fs.Parse(nil))
	t.Setenv("HOME", home)

	_, err := config.Load(fs)
	require.NoError(t, err)

	dir := filepath.Join(home, ".config", "tstamp")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log_level: debug\n"), 0o600))

	c, err := config.Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := config.Load(newFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.ErrorContains(t, err, "load config file")
}

func TestValidate(t *testing.T) {
	valid := config.Config{LogLevel: "info", InputFormat: "millis-tz", OutputFormat: "millis", Zone: "EST"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"level", func(c *config.Config) { c.LogLevel = "chatty" }, "invalid log level"},
		{"input", func(c *config.Config) { c.InputFormat = "julian" }, "unknown input format"},
		{"output", func(c *config.Config) { c.OutputFormat = "julian" }, "unknown output format"},
		{"zone", func(c *config.Config) { c.Zone = "America/New_York" }, "unknown fixed-offset zone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.errMsg)
		})
	}
}
