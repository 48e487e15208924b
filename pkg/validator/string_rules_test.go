package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestRequired(t *testing.T) {
	rule := validator.Required("is required")

	assert.Equal(t, validator.RuleRequired, rule.Name)
	assert.Equal(t, "is required", rule.Message)

	for _, v := range []string{"a", " a ", "0"} {
		assert.True(t, rule.Evaluate(v, nil), "value %q", v)
	}
	for _, v := range []string{"", " ", "\t\n"} {
		assert.False(t, rule.Evaluate(v, nil), "value %q", v)
	}
}

func TestMinLength(t *testing.T) {
	rule := validator.MinLength(5, "too short")

	t.Run("boundary", func(t *testing.T) {
		assert.False(t, rule.Evaluate("abcd", nil))
		assert.True(t, rule.Evaluate("abcde", nil))
		assert.True(t, rule.Evaluate("abcdef", nil))
	})

	t.Run("trims before counting", func(t *testing.T) {
		assert.False(t, rule.Evaluate("  abcd  ", nil))
		assert.True(t, rule.Evaluate("  abcde  ", nil))
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		assert.False(t, rule.Evaluate("žžžž", nil))
		assert.True(t, rule.Evaluate("žžžžž", nil))
	})

	t.Run("empty fails", func(t *testing.T) {
		assert.False(t, rule.Evaluate("", nil))
	})
}

func TestMaxLength(t *testing.T) {
	rule := validator.MaxLength(3, "too long")

	assert.True(t, rule.Evaluate("", nil))
	assert.True(t, rule.Evaluate(" abc ", nil))
	assert.False(t, rule.Evaluate("abcd", nil))
	assert.Equal(t, validator.RuleMaxLength, rule.Name)
}

func TestFunc(t *testing.T) {
	t.Run("receives trimmed value and context", func(t *testing.T) {
		var gotValue string
		var gotCtx validator.Context
		rule := validator.Func("custom", func(v string, ctx validator.Context) bool {
			gotValue, gotCtx = v, ctx
			return v == "yes"
		}, "must be yes")

		ctx := validator.Context{"other": "x"}
		assert.True(t, rule.Evaluate("  yes ", ctx))
		assert.Equal(t, "yes", gotValue)
		assert.Equal(t, ctx, gotCtx)
		assert.Equal(t, "custom", rule.Name)
	})

	t.Run("nil check produces rule rejected by NewForm", func(t *testing.T) {
		rule := validator.Func("custom", nil, "msg")
		_, err := validator.NewForm("f", validator.Field("a", rule))
		assert.ErrorIs(t, err, validator.ErrNilCheck)
	})
}
