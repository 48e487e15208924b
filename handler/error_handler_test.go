package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcheck/handler"
	"github.com/dmitrymomot/formcheck/pkg/requestid"
	"github.com/dmitrymomot/formcheck/pkg/signup"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("json error and warn log for client errors", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := handler.NewErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))

		req := httptest.NewRequest(http.MethodPost, "/validate", nil)
		req = req.WithContext(requestid.WithContext(req.Context(), "req-1"))
		w := httptest.NewRecorder()
		eh(handler.NewContext(w, req), handler.ErrBadRequest)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "bad_request", body.Error.Code)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.Equal(t, float64(http.StatusBadRequest), entry["status_code"])
		assert.Equal(t, "/validate", entry["path"])
	})

	t.Run("server errors log at error level", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := handler.NewErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodGet, "/", nil)), errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, logs.String(), `"level":"ERROR"`)
		assert.Contains(t, logs.String(), `"error":"boom"`)
		assert.NotContains(t, w.Body.String(), "boom")
	})

	t.Run("engine validation errors map to 422", func(t *testing.T) {
		t.Parallel()
		eh := handler.NewErrorHandler(nil)

		w := httptest.NewRecorder()
		err := signup.Validate(map[string]string{}).Err()
		eh(handler.NewContext(w, httptest.NewRequest(http.MethodPost, "/", nil)), err)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var body handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"Username is required"}, body.Error.Details["username"])
	})

	t.Run("datastar request gets error signal", func(t *testing.T) {
		t.Parallel()
		var logs bytes.Buffer
		eh := handler.NewErrorHandler(slog.New(slog.NewJSONHandler(&logs, nil)))

		w := httptest.NewRecorder()
		eh(handler.NewContext(w, datastarRequest()), handler.ErrUnsupportedMediaType)

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"code":"unsupported_media_type"`)
		assert.Contains(t, logs.String(), `"is_datastar":true`)
	})
}
