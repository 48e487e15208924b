package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestNewContext(t *testing.T) {
	t.Parallel()

	raw := map[string]string{"username": "  jane  ", "email": "\tjane@example.com\n"}
	ctx := validator.NewContext(raw)

	assert.Equal(t, "jane", ctx.Get("username"))
	assert.Equal(t, "jane@example.com", ctx.Get("email"))
	assert.Equal(t, "", ctx.Get("missing"))
	assert.True(t, ctx.Has("username"))
	assert.False(t, ctx.Has("missing"))
	assert.Equal(t, "  jane  ", raw["username"], "raw input must not be mutated")
}

func TestRule_Evaluate(t *testing.T) {
	t.Parallel()

	t.Run("rule without check passes", func(t *testing.T) {
		assert.True(t, validator.Rule{Message: "never"}.Evaluate("", nil))
	})

	t.Run("delegates to check", func(t *testing.T) {
		rule := validator.Rule{Check: func(v string, _ validator.Context) bool { return v == "ok" }}
		assert.True(t, rule.Evaluate("ok", nil))
		assert.False(t, rule.Evaluate("no", nil))
	})
}

func TestField_CopiesRules(t *testing.T) {
	t.Parallel()

	rules := []validator.Rule{validator.Required("required")}
	spec := validator.Field("name", rules...)
	rules[0] = validator.MinLength(100, "changed")

	assert.Equal(t, "required", spec.Rules[0].Message)
}

func TestValidateField(t *testing.T) {
	t.Parallel()

	spec := validator.Field("username",
		validator.Required("Username is required"),
		validator.MinLength(5, "Username must be at least 5 characters"),
	)

	t.Run("first failing rule wins", func(t *testing.T) {
		res := validator.ValidateField(spec, "", validator.Context{})
		assert.Equal(t, validator.FieldResult{
			ID:      "username",
			Valid:   false,
			Message: "Username is required",
			Rule:    validator.RuleRequired,
		}, res)
	})

	t.Run("whitespace only counts as empty", func(t *testing.T) {
		res := validator.ValidateField(spec, "    ", validator.Context{})
		assert.False(t, res.Valid)
		assert.Equal(t, "Username is required", res.Message)
	})

	t.Run("second rule reported when first passes", func(t *testing.T) {
		res := validator.ValidateField(spec, "abcd", validator.Context{})
		assert.False(t, res.Valid)
		assert.Equal(t, "Username must be at least 5 characters", res.Message)
		assert.Equal(t, validator.RuleMinLength, res.Rule)
	})

	t.Run("valid value has empty message", func(t *testing.T) {
		res := validator.ValidateField(spec, "abcde", validator.Context{})
		assert.Equal(t, validator.FieldResult{ID: "username", Valid: true}, res)
	})

	t.Run("later rules are never evaluated after a failure", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{
			Name:    "counting",
			Message: "counted",
			Check: func(string, validator.Context) bool {
				calls++
				return false
			},
		}
		s := validator.Field("f", validator.Required("required"), counting)

		res := validator.ValidateField(s, "", validator.Context{})
		assert.Equal(t, "required", res.Message)
		assert.Equal(t, 0, calls)

		res = validator.ValidateField(s, "x", validator.Context{})
		assert.Equal(t, "counted", res.Message)
		assert.Equal(t, 1, calls)
	})

	t.Run("spec without rules is valid", func(t *testing.T) {
		res := validator.ValidateField(validator.Field("free"), "", nil)
		assert.True(t, res.Valid)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	specs := []validator.FieldSpec{
		validator.Field("username",
			validator.Required("Username is required"),
			validator.MinLength(5, "Username must be at least 5 characters"),
		),
		validator.Field("email",
			validator.Required("Email is required"),
			validator.ValidEmail("Provide a valid email address"),
		),
	}

	t.Run("reports every field in declaration order", func(t *testing.T) {
		report := validator.Validate(specs, map[string]string{"username": "", "email": "nope"})

		require.Len(t, report.Fields(), 2)
		assert.False(t, report.Valid())
		assert.Equal(t, "username", report.Fields()[0].ID)
		assert.Equal(t, "Username is required", report.Fields()[0].Message)
		assert.Equal(t, "email", report.Fields()[1].ID)
		assert.Equal(t, "Provide a valid email address", report.Fields()[1].Message)
	})

	t.Run("missing keys are treated as empty", func(t *testing.T) {
		report := validator.Validate(specs, nil)

		assert.False(t, report.Valid())
		assert.Equal(t, map[string]string{
			"username": "Username is required",
			"email":    "Email is required",
		}, report.Messages())
	})

	t.Run("all valid", func(t *testing.T) {
		report := validator.Validate(specs, map[string]string{"username": "janedoe", "email": "jane@example.com"})

		assert.True(t, report.Valid())
		assert.Empty(t, report.Invalid())
		assert.Empty(t, report.Messages())
		assert.NoError(t, report.Err())
		for _, res := range report.Fields() {
			assert.Empty(t, res.Message)
		}
	})

	t.Run("no specs is valid", func(t *testing.T) {
		report := validator.Validate(nil, map[string]string{"x": "y"})
		assert.True(t, report.Valid())
		assert.Empty(t, report.Fields())
	})

	t.Run("is idempotent", func(t *testing.T) {
		raw := map[string]string{"username": "abc", "email": "jane@example.com"}
		assert.Equal(t, validator.Validate(specs, raw), validator.Validate(specs, raw))
	})

	t.Run("overall validity is the AND of field validity", func(t *testing.T) {
		inputs := []map[string]string{
			{},
			{"username": "janedoe"},
			{"email": "jane@example.com"},
			{"username": "janedoe", "email": "jane@example.com"},
			{"username": "abc", "email": "jane@example.com"},
			{"username": "janedoe", "email": "bad"},
		}
		for _, raw := range inputs {
			report := validator.Validate(specs, raw)
			all := true
			for _, res := range report.Fields() {
				all = all && res.Valid
			}
			assert.Equal(t, all, report.Valid(), "input: %v", raw)
		}
	})
}

func TestReport_Accessors(t *testing.T) {
	t.Parallel()

	specs := []validator.FieldSpec{
		validator.Field("a", validator.Required("a is required")),
		validator.Field("b", validator.Required("b is required")),
	}
	report := validator.Validate(specs, map[string]string{"a": "x"})

	t.Run("field lookup", func(t *testing.T) {
		res, ok := report.Field("b")
		require.True(t, ok)
		assert.False(t, res.Valid)

		_, ok = report.Field("c")
		assert.False(t, ok)
	})

	t.Run("fields returns a copy", func(t *testing.T) {
		fields := report.Fields()
		fields[0].Valid = false
		fields[0].Message = "tampered"

		res, _ := report.Field("a")
		assert.True(t, res.Valid)
		assert.Empty(t, res.Message)
	})

	t.Run("err bridges to validation errors", func(t *testing.T) {
		err := report.Err()
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, validator.ValidationError{Field: "b", Rule: validator.RuleRequired, Message: "b is required"}, verrs[0])
	})

	t.Run("marshals to json", func(t *testing.T) {
		data, err := json.Marshal(report)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"valid": false,
			"fields": [
				{"id": "a", "valid": true},
				{"id": "b", "valid": false, "message": "b is required", "rule": "required"}
			]
		}`, string(data))
	})

	t.Run("empty report marshals fields as array", func(t *testing.T) {
		data, err := json.Marshal(validator.Report{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"valid": false, "fields": []}`, string(data))
	})
}
