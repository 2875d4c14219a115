// Package timefmt parses RFC3339 timestamps and plain dates into instants
// and prints instants back as RFC3339.
package timefmt

import (
	"errors"
	"strings"
	"time"

	"github.com/leapmux/tstamp/instant"
)

// Layouts accepted by the recognizers, in Go reference-time notation.
const (
	// ISO8601 is the millisecond layout used for timestamp serialization.
	ISO8601      = "2006-01-02T15:04:05.000Z"
	ISO8601Nanos = "2006-01-02T15:04:05.000000000Z"

	fracUTCLayout    = "2006-01-02T15:04:05.999999999Z"
	secondsUTCLayout = "2006-01-02T15:04:05Z"
	offsetLayout     = "2006-01-02T15:04:05.999999999-07:00"
	DateLayout       = "2006-01-02"
)

// ErrNoMatch is returned by callers that need an error value when no
// recognizer in a chain accepted the input.
var ErrNoMatch = errors.New("timefmt: no matching timestamp format")

// Recognizer parses one textual layout.
type Recognizer func(text string) (instant.Instant, bool)

// Chain is an ordered list of recognizers. Earlier entries take priority.
type Chain []Recognizer

// TimestampChain accepts, in order: a UTC timestamp with fractional
// seconds, a UTC timestamp without them, and a timestamp with a numeric
// offset.
var TimestampChain = Chain{
	recognizeFracUTC,
	recognizeSecondsUTC,
	recognizeOffset,
}

// DateChain accepts a bare calendar date, read as midnight UTC.
var DateChain = Chain{
	recognizeLayout(DateLayout),
}

// Parse runs text through chain and returns the result of the first
// recognizer that accepts it.
func Parse(text string, chain Chain) (instant.Instant, bool) {
	for _, recognize := range chain {
		if i, ok := recognize(text); ok {
			return i, true
		}
	}
	return instant.Instant{}, false
}

// ParseTimestamp parses an RFC3339 timestamp using TimestampChain.
func ParseTimestamp(text string) (instant.Instant, bool) {
	return Parse(text, TimestampChain)
}

// ParseDate parses a YYYY-MM-DD date using DateChain.
func ParseDate(text string) (instant.Instant, bool) {
	return Parse(text, DateChain)
}

func recognizeLayout(layout string) Recognizer {
	return func(text string) (instant.Instant, bool) {
		t, err := time.Parse(layout, text)
		if err != nil {
			return instant.Instant{}, false
		}
		return instant.FromTime(t), true
	}
}

var (
	parseFracUTC    = recognizeLayout(fracUTCLayout)
	parseSecondsUTC = recognizeLayout(secondsUTCLayout)
	parseOffset     = recognizeLayout(offsetLayout)
)

// time.Parse tolerates a fraction after the seconds field even when the
// layout has none, treats ".999" as optional and also accepts a comma as
// the decimal separator. The guards below keep the first two recognizers
// disjoint and only admit '.' fractions.

func recognizeFracUTC(text string) (instant.Instant, bool) {
	if afterSeconds(text) != '.' {
		return instant.Instant{}, false
	}
	return parseFracUTC(text)
}

func recognizeSecondsUTC(text string) (instant.Instant, bool) {
	if sep := afterSeconds(text); sep == '.' || sep == ',' {
		return instant.Instant{}, false
	}
	return parseSecondsUTC(text)
}

func recognizeOffset(text string) (instant.Instant, bool) {
	if afterSeconds(text) == ',' {
		return instant.Instant{}, false
	}
	return parseOffset(text)
}

// afterSeconds returns the byte right after the seconds field, or 0 when
// text is too short to have one.
func afterSeconds(text string) byte {
	t := strings.IndexByte(text, 'T')
	if t < 0 || len(text) <= t+9 {
		return 0
	}
	return text[t+9]
}

// FormatRFC3339Millis renders i in UTC with exactly three fractional
// digits, truncating anything finer.
func FormatRFC3339Millis(i instant.Instant) string {
	return i.Time().Format(ISO8601)
}

// FormatRFC3339Nanos renders i in UTC with exactly nine fractional digits.
func FormatRFC3339Nanos(i instant.Instant) string {
	return i.Time().Format(ISO8601Nanos)
}
