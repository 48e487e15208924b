// Package signup defines the registration form: username, email, password
// and password confirmation, with the user-facing messages shown next to each
// field.
package signup

import "github.com/dmitrymomot/formcheck/pkg/validator"

// Field ids, matching the form control ids.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password-confirm"
)

const (
	MinUsernameLength = 5
	MinPasswordLength = 8
)

// SuccessMessage is shown once every field is valid.
const SuccessMessage = "Registration successful!"

// FormName identifies the form in logs and HTTP routes.
const FormName = "signup"

// Fields returns a fresh copy of the registration specs in page order.
func Fields() []validator.FieldSpec {
	return []validator.FieldSpec{
		validator.Field(FieldUsername,
			validator.Required("Username is required"),
			validator.MinLength(MinUsernameLength, "Username must be at least 5 characters"),
		),
		validator.Field(FieldEmail,
			validator.Required("Email is required"),
			validator.ValidEmail("Provide a valid email address"),
		),
		validator.Field(FieldPassword,
			validator.Required("Password is required"),
			validator.MinLength(MinPasswordLength, "Password must be at least 8 characters"),
		),
		validator.Field(FieldPasswordConfirm,
			validator.Required("Please confirm your password"),
			validator.EqualsField(FieldPassword, "Passwords do not match"),
		),
	}
}

var form = validator.MustForm(FormName, Fields()...)

// Form returns the shared registration form.
func Form() *validator.Form {
	return form
}

// Validate runs one validation pass over the submitted values.
func Validate(values map[string]string) validator.Report {
	return form.Validate(values)
}
