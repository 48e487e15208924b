// Package validator implements a small, declarative form validation engine.
//
// A form is described once, at setup time, as an ordered list of FieldSpec
// values. Each FieldSpec names a field and carries an ordered list of Rule
// values. A Rule is a pure predicate over the field's trimmed value and the
// read-only Context of all trimmed sibling values, plus the message reported
// when the predicate fails.
//
// # Evaluation
//
// Validate builds a fresh Context from the raw input, then evaluates every
// FieldSpec in declaration order:
//
//   - Within a field evaluation is fail-fast: the first failing rule's
//     message is reported and the remaining rules are never evaluated.
//   - Across fields there is no early termination: every field is reported,
//     so a renderer can surface all problems at once.
//
// The resulting Report is immutable. Report.Valid is true iff every
// FieldResult is valid.
//
// # Usage
//
//	form := validator.MustForm("signup",
//	    validator.Field("username",
//	        validator.Required("Username is required"),
//	        validator.MinLength(5, "Username must be at least 5 characters"),
//	    ),
//	    validator.Field("password",
//	        validator.Required("Password is required"),
//	    ),
//	    validator.Field("password-confirm",
//	        validator.Required("Please confirm your password"),
//	        validator.EqualsField("password", "Passwords do not match"),
//	    ),
//	)
//
//	report := form.Validate(map[string]string{"username": "jane"})
//	if !report.Valid() {
//	    for _, res := range report.Invalid() {
//	        fmt.Println(res.ID, res.Message)
//	    }
//	}
//
// # Error Handling
//
// Validation failures are data, never errors. Callers that prefer the error
// interface can use Report.Err, which returns nil for a valid report and a
// ValidationErrors value otherwise. ValidationErrors matches
// ErrValidationFailed with errors.Is and can be recovered with errors.As or
// ExtractValidationErrors.
//
// Configuration mistakes (empty or duplicate field ids, rules without a
// check) are reported once by NewForm.
//
// # Concurrency
//
// Rules, FieldSpecs and Forms are never mutated after construction and every
// call to Validate allocates its own Context and Report, so a Form can be
// shared by any number of goroutines without coordination.
package validator
