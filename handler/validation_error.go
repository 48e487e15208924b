package handler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// ValidationError holds per-field messages. It's based on url.Values to
// reuse its string slice handling.
type ValidationError url.Values

// Error summarizes the first message of each field, sorted by field id.
// A map carries no declaration order; use the report for that.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if msgs := e[field]; len(msgs) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[0]))
		}
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// FromReport collects the message of every invalid field of report.
// A valid report yields an empty ValidationError.
func FromReport(report validator.Report) ValidationError {
	e := NewValidationError()
	for _, res := range report.Invalid() {
		e.Add(res.ID, res.Message)
	}
	return e
}

// FromValidationErrors converts the engine's error form.
func FromValidationErrors(errs validator.ValidationErrors) ValidationError {
	e := NewValidationError()
	for _, err := range errs {
		e.Add(err.Field, err.Message)
	}
	return e
}

// Add adds an error message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first error message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
