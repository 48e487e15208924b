package sanitizer

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NFC returns the canonical composition of s, so "é" and "é" compare equal.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Length counts code points of the NFC form of s.
// Byte length would overcount any non-ASCII input.
func Length(s string) int {
	return utf8.RuneCountInString(NFC(s))
}
