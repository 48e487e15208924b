package validator

import (
	"regexp"

	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

// EmailPattern accepts a quoted or dot-separated unquoted local part, followed
// by either a bracketed IPv4 literal or a dotted domain ending in a label of
// at least two letters. It approximates RFC 5322 and is not a full parser.
// Unquoted local parts reject every Unicode space separator, not only ASCII
// whitespace.
var EmailPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s\x0b\p{Z}\x{feff}@"]+(\.[^<>()\[\]\\.,;:\s\x0b\p{Z}\x{feff}@"]+)*)|(".+"))` +
		`@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`,
)

// MatchesPattern fails iff the trimmed value does not match re.
// A nil re never matches.
func MatchesPattern(re *regexp.Regexp, message string) Rule {
	return Rule{
		Name: RulePattern,
		Check: func(value string, _ Context) bool {
			if re == nil {
				return false
			}
			return re.MatchString(sanitizer.Trim(value))
		},
		Message: message,
	}
}

// MatchesRegex compiles pattern once and returns MatchesPattern for it.
// It panics if pattern is invalid; use regexp.Compile with MatchesPattern to
// handle untrusted patterns.
func MatchesRegex(pattern string, message string) Rule {
	return MatchesPattern(regexp.MustCompile(pattern), message)
}

// ValidEmail matches the lower-cased trimmed value against EmailPattern.
func ValidEmail(message string) Rule {
	return Rule{
		Name: RuleEmail,
		Check: func(value string, _ Context) bool {
			return EmailPattern.MatchString(sanitizer.TrimToLower(value))
		},
		Message: message,
	}
}
