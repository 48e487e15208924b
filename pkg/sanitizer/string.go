package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts a string to lowercase using language-neutral case mapping.
func Lower(s string) string {
	return lowerCaser.String(s)
}

// TrimToLower trims whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return Lower(Trim(s))
}

// RemoveControlChars drops non-printable control characters, keeping tabs and newlines.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r' {
			return -1
		}
		return r
	}, s)
}
