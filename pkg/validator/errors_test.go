package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with errors in order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "Email is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "Password is required"})

		assert.Equal(t, "validation failed: email: Email is required; password: Password is required", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Rule: "email", Message: "Provide a valid email address"},
		{Field: "password", Rule: "min_length", Message: "Password must be at least 8 characters"},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("username"))
	assert.Equal(t, "Provide a valid email address", errs.Get("email"))
	assert.Equal(t, "", errs.Get("username"))
	assert.Equal(t, []string{"email", "password"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestValidationErrors_Is(t *testing.T) {
	errs := validator.ValidationErrors{{Field: "a", Message: "bad"}}

	assert.ErrorIs(t, errs, validator.ErrValidationFailed)

	wrapped := fmt.Errorf("signup: %w", errs)
	assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	assert.False(t, errors.Is(errors.New("other"), validator.ErrValidationFailed))
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		errs := validator.ValidationErrors{{Field: "a", Message: "bad"}}
		wrapped := fmt.Errorf("outer: %w", errs)

		got := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, errs, got)
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})
}
