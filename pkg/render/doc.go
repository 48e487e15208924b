// Package render turns a validator.Report into visual field state without
// tying the validator to any UI toolkit.
//
// Each FieldResult maps to exactly one of two states. An invalid field is in
// StateError and shows its message; a valid field is in StateSuccess and
// clears any message left by a previous attempt.
//
// Consumers pick the form that suits their surface:
//
//   - Apply drives a Target callback pair, one call per field in report order.
//   - States returns the same information as data.
//   - Signals builds the payload for a datastar signal patch.
//   - Feedback and Summary return templ components for server-rendered HTML.
//
// Element ids follow the form control ids: the .input-group container of
// field "email" is "email-group", its message element is "email-error", and
// the form-level message is "form-success-message". The container carries
// the class "input-group error" or "input-group success".
package render
