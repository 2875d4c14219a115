package timeserde

import (
	"strconv"
	"strings"
)

// TextDeserializer reads one bare scalar, such as a line of text or a CSV
// cell. Numbers are not quoted, strings are taken verbatim, and an empty
// value or "null" is null.
type TextDeserializer struct {
	text string
}

// NewTextDeserializer wraps text.
func NewTextDeserializer(text string) *TextDeserializer {
	return &TextDeserializer{text: text}
}

func (d *TextDeserializer) DecodeString() (string, error) {
	return d.text, nil
}

func (d *TextDeserializer) DecodeUint64() (uint64, error) {
	n, err := strconv.ParseUint(d.text, 10, 64)
	if err == nil {
		return n, nil
	}
	// Negative or out of range, but still an integer.
	if isDigits(strings.TrimPrefix(d.text, "-")) {
		return 0, &ValueError{Kind: KindInteger, Input: d.text, Expected: "a non-negative integer"}
	}
	return 0, &TypeError{Got: "string " + strconv.Quote(d.text), Expected: "a non-negative integer"}
}

func (d *TextDeserializer) DecodeNil() (bool, error) {
	return d.text == "" || d.text == "null", nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// TextSerializer collects one bare scalar.
type TextSerializer struct {
	text string
}

// String returns the collected scalar.
func (s *TextSerializer) String() string { return s.text }

func (s *TextSerializer) EncodeString(v string) error {
	s.text = v
	return nil
}

func (s *TextSerializer) EncodeUint64(n uint64) error {
	s.text = strconv.FormatUint(n, 10)
	return nil
}

func (s *TextSerializer) EncodeNil() error {
	s.text = "null"
	return nil
}
