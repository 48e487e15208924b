package validator

import "github.com/dmitrymomot/formcheck/pkg/sanitizer"

// Rule names reported in FieldResult.Rule.
const (
	RuleRequired       = "required"
	RuleMinLength      = "min_length"
	RuleMaxLength      = "max_length"
	RulePattern        = "pattern"
	RuleEmail          = "email"
	RuleEqualsField    = "equals_field"
	RuleNotEqualsField = "not_equals_field"
	RuleOneOf          = "one_of"
)

// Required fails iff the trimmed value is empty.
func Required(message string) Rule {
	return Rule{
		Name: RuleRequired,
		Check: func(value string, _ Context) bool {
			return sanitizer.Trim(value) != ""
		},
		Message: message,
	}
}

// MinLength fails iff the trimmed value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{
		Name: RuleMinLength,
		Check: func(value string, _ Context) bool {
			return sanitizer.Length(sanitizer.Trim(value)) >= n
		},
		Message: message,
	}
}

// MaxLength fails iff the trimmed value has more than n characters.
func MaxLength(n int, message string) Rule {
	return Rule{
		Name: RuleMaxLength,
		Check: func(value string, _ Context) bool {
			return sanitizer.Length(sanitizer.Trim(value)) <= n
		},
		Message: message,
	}
}

// Func adapts a custom predicate into a Rule. check receives the trimmed value.
func Func(name string, check func(value string, ctx Context) bool, message string) Rule {
	if check == nil {
		return Rule{Name: name, Message: message}
	}
	return Rule{
		Name: name,
		Check: func(value string, ctx Context) bool {
			return check(sanitizer.Trim(value), ctx)
		},
		Message: message,
	}
}
