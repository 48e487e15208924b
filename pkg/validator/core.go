package validator

import (
	"encoding/json"

	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

// Context maps field ids to their trimmed values for one validation pass.
// Rules must treat it as read-only.
type Context map[string]string

// NewContext trims every raw value into a fresh Context.
func NewContext(raw map[string]string) Context {
	return Context(sanitizer.TrimValues(raw))
}

// Get returns the trimmed value of id, or "" when the field was not submitted.
func (c Context) Get(id string) string {
	return c[id]
}

// Has reports whether id was submitted, even with an empty value.
func (c Context) Has(id string) bool {
	_, ok := c[id]
	return ok
}

// Rule is a single pass/fail check with the message reported on failure.
// Check must be deterministic and free of side effects.
type Rule struct {
	Name    string
	Check   func(value string, ctx Context) bool
	Message string
}

// Evaluate reports whether value passes the rule. A rule without a Check passes.
func (r Rule) Evaluate(value string, ctx Context) bool {
	if r.Check == nil {
		return true
	}
	return r.Check(value, ctx)
}

// FieldSpec identifies a field and the ordered rules applied to it.
type FieldSpec struct {
	ID    string
	Rules []Rule
}

// Field builds a FieldSpec. The rules slice is copied so later changes to the
// caller's slice do not leak into the spec.
func Field(id string, rules ...Rule) FieldSpec {
	return FieldSpec{ID: id, Rules: append([]Rule(nil), rules...)}
}

// FieldResult is the outcome of evaluating one FieldSpec.
type FieldResult struct {
	ID      string `json:"id"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

// ValidateField applies spec.Rules in order to the trimmed value and stops at
// the first failing rule.
func ValidateField(spec FieldSpec, value string, ctx Context) FieldResult {
	value = sanitizer.Trim(value)
	for _, rule := range spec.Rules {
		if !rule.Evaluate(value, ctx) {
			return FieldResult{
				ID:      spec.ID,
				Valid:   false,
				Message: rule.Message,
				Rule:    rule.Name,
			}
		}
	}
	return FieldResult{ID: spec.ID, Valid: true}
}

// Report is the immutable outcome of one validation pass.
type Report struct {
	fields []FieldResult
	valid  bool
}

// Validate evaluates every spec against raw in declaration order.
// Every field is reported even after an earlier field fails.
func Validate(specs []FieldSpec, raw map[string]string) Report {
	ctx := NewContext(raw)
	results := make([]FieldResult, 0, len(specs))
	valid := true

	for _, spec := range specs {
		res := ValidateField(spec, ctx.Get(spec.ID), ctx)
		valid = valid && res.Valid
		results = append(results, res)
	}

	return Report{fields: results, valid: valid}
}

// Valid reports whether every field passed.
func (r Report) Valid() bool {
	return r.valid
}

// Fields returns a copy of the per-field results in declaration order.
func (r Report) Fields() []FieldResult {
	return append([]FieldResult(nil), r.fields...)
}

// Field returns the result for id.
func (r Report) Field(id string) (FieldResult, bool) {
	for _, res := range r.fields {
		if res.ID == id {
			return res, true
		}
	}
	return FieldResult{}, false
}

// Invalid returns the failing results in declaration order.
func (r Report) Invalid() []FieldResult {
	var out []FieldResult
	for _, res := range r.fields {
		if !res.Valid {
			out = append(out, res)
		}
	}
	return out
}

// Messages maps every invalid field id to its message.
func (r Report) Messages() map[string]string {
	out := make(map[string]string)
	for _, res := range r.fields {
		if !res.Valid {
			out[res.ID] = res.Message
		}
	}
	return out
}

// Err returns nil for a valid report and ValidationErrors otherwise.
func (r Report) Err() error {
	if r.valid {
		return nil
	}

	var errs ValidationErrors
	for _, res := range r.fields {
		if !res.Valid {
			errs.Add(ValidationError{Field: res.ID, Rule: res.Rule, Message: res.Message})
		}
	}
	return errs
}

type reportJSON struct {
	Valid  bool          `json:"valid"`
	Fields []FieldResult `json:"fields"`
}

func (r Report) MarshalJSON() ([]byte, error) {
	fields := r.fields
	if fields == nil {
		fields = []FieldResult{}
	}
	return json.Marshal(reportJSON{Valid: r.valid, Fields: fields})
}
