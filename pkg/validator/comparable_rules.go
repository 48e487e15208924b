package validator

import (
	"slices"

	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

// EqualsField fails iff the trimmed value differs from the context value of otherID.
// A missing sibling compares as "".
func EqualsField(otherID string, message string) Rule {
	return Rule{
		Name: RuleEqualsField,
		Check: func(value string, ctx Context) bool {
			return sanitizer.Trim(value) == ctx.Get(otherID)
		},
		Message: message,
	}
}

// NotEqualsField fails iff the trimmed value equals the context value of otherID.
func NotEqualsField(otherID string, message string) Rule {
	return Rule{
		Name: RuleNotEqualsField,
		Check: func(value string, ctx Context) bool {
			return sanitizer.Trim(value) != ctx.Get(otherID)
		},
		Message: message,
	}
}

// OneOf fails iff the trimmed value is not one of allowed.
func OneOf(allowed []string, message string) Rule {
	allowed = slices.Clone(allowed)
	return Rule{
		Name: RuleOneOf,
		Check: func(value string, _ Context) bool {
			return slices.Contains(allowed, sanitizer.Trim(value))
		},
		Message: message,
	}
}
