package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formcheck/pkg/binder"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/requestid"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

const genericErrorMessage = "An error occurred processing your request"

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	LogLevel   slog.Level
	Fields     ValidationError
}

// binderErrors maps binder failures to client errors.
var binderErrors = []struct {
	err    error
	status HTTPError
}{
	{binder.ErrUnsupportedMediaType, ErrUnsupportedMediaType},
	{binder.ErrBodyTooLarge, ErrRequestEntityTooLarge},
	{binder.ErrMissingContentType, ErrBadRequest},
	{binder.ErrFailedToParseForm, ErrBadRequest},
	{binder.ErrFailedToParseJSON, ErrBadRequest},
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// classifyError resolves status, code and client-facing message for err.
// Messages of unknown errors are never exposed.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    genericErrorMessage,
	}

	var (
		httpErr   HTTPError
		fieldErr  ValidationError
		engineErr validator.ValidationErrors
	)
	switch {
	case errors.As(err, &fieldErr):
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_error"
		info.Message = fieldErr.Error()
		info.Fields = fieldErr
	case errors.As(err, &engineErr):
		fieldErr = FromValidationErrors(engineErr)
		info.StatusCode = http.StatusUnprocessableEntity
		info.Code = "validation_error"
		info.Message = fieldErr.Error()
		info.Fields = fieldErr
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	default:
		for _, be := range binderErrors {
			if errors.Is(err, be.err) {
				info.StatusCode = be.status.Code
				info.Code = be.status.Key
				info.Message = err.Error()
				break
			}
		}
	}

	info.LogLevel = slog.LevelError
	if isClientError(info.StatusCode) {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Bool("is_datastar", IsDataStar(r)),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the service error handler. Regular requests get
// the JSON error envelope; datastar requests get an "error" signal patch
// ({"error": {"code", "message"}}) since SSE responses carry no status.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		w, r := ctx.ResponseWriter(), ctx.Request()
		if IsDataStar(r) {
			if renderErr := renderErrorSignal(w, r, info); renderErr != nil {
				log.Error("failed to patch error signal",
					logger.RequestID(requestid.FromContext(r.Context())),
					logger.Error(renderErr),
					logger.Event("render_error_signal"),
				)
			}
			return
		}

		if renderErr := JSONError(err).Render(w, r); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(renderErr),
				logger.Event("render_error_json"),
			)
		}
	}
}

func renderErrorSignal(w http.ResponseWriter, r *http.Request, info ErrorInfo) error {
	data, err := json.Marshal(map[string]any{
		"error": map[string]string{
			"code":    info.Code,
			"message": info.Message,
		},
	})
	if err != nil {
		return err
	}
	return datastar.NewSSE(w, r).PatchSignals(data)
}
