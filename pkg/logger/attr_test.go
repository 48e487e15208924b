package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.True(t, slog.Attr{}.Equal(logger.Error(nil)))
	assert.Equal(t, "error", logger.Error(errors.New("x")).Key)

	assert.True(t, slog.Attr{}.Equal(logger.RequestID("")))
	assert.True(t, slog.String("request_id", "r1").Equal(logger.RequestID("r1")))

	assert.True(t, slog.String("component", "validation").Equal(logger.Component("validation")))
	assert.True(t, slog.String("event", "validate").Equal(logger.Event("validate")))
	assert.True(t, slog.Duration("duration", time.Second).Equal(logger.Duration(time.Second)))

	assert.True(t, slog.String("form", "signup").Equal(logger.Form("signup")))
	assert.True(t, slog.Bool("valid", false).Equal(logger.Valid(false)))

	fields := logger.InvalidFields("email", "password")
	assert.Equal(t, "invalid_fields", fields.Key)
	assert.Equal(t, []string{"email", "password"}, fields.Value.Any())
}
