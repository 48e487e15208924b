// Package formspec loads validator forms from YAML documents so field rules
// can be configured at deploy time instead of compiled in.
//
// A document names the form and lists its fields in evaluation order:
//
//	name: signup
//	fields:
//	  - id: username
//	    rules:
//	      - rule: required
//	        message: Username is required
//	      - rule: min_length
//	        min: 5
//	        message: Username must be at least 5 characters
//	  - id: password-confirm
//	    rules:
//	      - rule: equals_field
//	        field: password
//	        message: Passwords do not match
//
// Supported rules and their parameters:
//
//   - required
//   - min_length (min), max_length (max)
//   - pattern (pattern, RE2 syntax)
//   - email
//   - equals_field (field), not_equals_field (field)
//   - one_of (values)
//
// Every rule needs a message. Cross-field rules must reference a field
// declared in the same document. Unknown keys are rejected so typos surface
// at startup.
package formspec
