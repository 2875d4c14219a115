// Package sanitize makes untrusted input safe to echo into logs.
package sanitize

import (
	"strings"
	"unicode"
)

// MaxLogLen bounds how much of a rejected value is logged.
const MaxLogLen = 64

// Value strips control characters from s and cuts it to at most maxLen
// runes, marking a cut with a trailing "...".
func Value(s string, maxLen int) string {
	var b strings.Builder
	b.Grow(min(len(s), 4*maxLen))
	n := 0
	for _, r := range s {
		if unicode.IsControl(r) || r == unicode.ReplacementChar {
			continue
		}
		if n == maxLen {
			return strings.TrimSpace(b.String()) + "..."
		}
		b.WriteRune(r)
		n++
	}
	return strings.TrimSpace(b.String())
}

// LogValue is Value with MaxLogLen.
func LogValue(s string) string {
	return Value(s, MaxLogLen)
}
