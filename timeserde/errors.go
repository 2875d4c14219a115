package timeserde

import (
	"fmt"

	"github.com/leapmux/tstamp/instant"
	"github.com/leapmux/tstamp/timefmt"
)

// Wire value kinds used in error messages.
const (
	KindString  = "string"
	KindInteger = "integer"
)

// ValueError reports a wire value of the right shape that is not an
// acceptable timestamp, e.g. a string no recognizer accepts.
type ValueError struct {
	Kind     string // KindString or KindInteger
	Input    string // the rejected value as read from the wire
	Expected string
}

func (e *ValueError) Error() string {
	if e.Kind == KindString {
		return fmt.Sprintf("invalid value: string %q, expected %s", e.Input, e.Expected)
	}
	return fmt.Sprintf("invalid value: %s %s, expected %s", e.Kind, e.Input, e.Expected)
}

// Unwrap lets errors.Is(err, timefmt.ErrNoMatch) match rejected strings.
func (e *ValueError) Unwrap() error {
	if e.Kind == KindString {
		return timefmt.ErrNoMatch
	}
	return nil
}

// TypeError reports a wire value of the wrong shape, e.g. a number where a
// string was expected.
type TypeError struct {
	Got      string
	Expected string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid type: %s, expected %s", e.Got, e.Expected)
}

// EncodeError reports an instant the chosen encoding cannot represent.
type EncodeError struct {
	Instant instant.Instant
	Reason  string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode %s: %s", e.Instant, e.Reason)
}

// MissingError reports a required Field left without a value, either
// because the key was absent or because the format skipped a null.
type MissingError struct {
	Field string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing value for field %q", e.Field)
}

func invalidString(s, expected string) error {
	return &ValueError{Kind: KindString, Input: s, Expected: expected}
}
