package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/timefmt"
)

// MustParse parses an RFC3339 timestamp or fails the test immediately.
func MustParse(t *testing.T, text string) instant.Instant {
	t.Helper()
	i, ok := timefmt.ParseTimestamp(text)
	require.True(t, ok, "timestamp %q did not parse", text)
	return i
}

// MustParseDate parses a YYYY-MM-DD date or fails the test immediately.
func MustParseDate(t *testing.T, text string) instant.Instant {
	t.Helper()
	i, ok := timefmt.ParseDate(text)
	require.True(t, ok, "date %q did not parse", text)
	return i
}

// AssertInstant compares an instant against the RFC3339 timestamp want,
// reporting both in nanosecond precision on mismatch.
func AssertInstant(t *testing.T, want string, got instant.Instant, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.Equal(t, MustParse(t, want).String(), got.String(), msgAndArgs...)
}
