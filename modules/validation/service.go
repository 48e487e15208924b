// Package validation exposes a configured form over HTTP.
//
//	r := chi.NewRouter()
//	r.Mount("/signup", validation.Router(validation.Options{
//		Form:           signup.Form(),
//		SuccessMessage: signup.SuccessMessage,
//		Logger:         log,
//	}))
//
// POST /validate binds form, JSON or datastar signal values and answers
// with the report. GET /fields lists the field ids in declaration order.
// Submitted values are never stored or forwarded.
package validation

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formcheck/handler"
	"github.com/dmitrymomot/formcheck/pkg/binder"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// ErrNoForm is returned by NewService without a form.
var ErrNoForm = errors.New("validation: form is required")

// Options configures the validation module.
type Options struct {
	Form           *validator.Form
	SuccessMessage string
	Logger         *slog.Logger

	// ErrorHandler defaults to handler.NewErrorHandler(Logger).
	ErrorHandler handler.ErrorHandler[handler.Context]

	// RateLimiter throttles POST /validate per client IP when set.
	RateLimiter *ratelimiter.Limiter

	// Metrics records every validation pass when set.
	Metrics *Metrics
}

// Service serves one form.
type Service struct {
	form         *validator.Form
	success      string
	log          *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
	limiter      *ratelimiter.Limiter
	metrics      *Metrics
}

// NewService validates opts and builds a Service.
func NewService(opts Options) (*Service, error) {
	if opts.Form == nil {
		return nil, ErrNoForm
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	eh := opts.ErrorHandler
	if eh == nil {
		eh = handler.NewErrorHandler(log)
	}

	return &Service{
		form:         opts.Form,
		success:      opts.SuccessMessage,
		log:          log.With(logger.Component("validation"), logger.Form(opts.Form.Name())),
		errorHandler: eh,
		limiter:      opts.RateLimiter,
		metrics:      opts.Metrics,
	}, nil
}

// Router builds the module router. It panics when opts has no form.
func Router(opts Options) chi.Router {
	svc, err := NewService(opts)
	if err != nil {
		panic(err)
	}
	return svc.Handle()
}

// Handle returns the module routes.
func (s *Service) Handle() chi.Router {
	r := chi.NewRouter()

	var throttle []func(http.Handler) http.Handler
	if s.limiter != nil {
		throttle = append(throttle, ratelimiter.Middleware(s.limiter, ratelimiter.ByClientIP))
	}
	r.With(throttle...).Post("/validate", handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, map[string]string](binder.Values()),
		handler.WithErrorHandler[handler.Context, map[string]string](s.errorHandler),
	))
	r.Get("/fields", handler.Wrap(s.fields,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) validate(ctx handler.Context, values map[string]string) handler.Response {
	start := time.Now()
	report := s.form.Validate(values)
	elapsed := time.Since(start)
	s.metrics.Observe(s.form.Name(), report, elapsed)

	attrs := []slog.Attr{
		logger.Valid(report.Valid()),
		logger.Duration(elapsed),
	}
	if !report.Valid() {
		attrs = append(attrs, logger.InvalidFields(invalidIDs(report)...))
	}
	s.log.LogAttrs(ctx, slog.LevelInfo, "form validated", attrs...)

	return handler.Report(report, s.success)
}

// FieldsResponse lists the fields of the served form.
type FieldsResponse struct {
	Form   string   `json:"form"`
	Fields []string `json:"fields"`
}

func (s *Service) fields(_ handler.Context, _ struct{}) handler.Response {
	return handler.JSON(FieldsResponse{
		Form:   s.form.Name(),
		Fields: s.form.Fields(),
	})
}

func invalidIDs(report validator.Report) []string {
	invalid := report.Invalid()
	ids := make([]string, 0, len(invalid))
	for _, res := range invalid {
		ids = append(ids, res.ID)
	}
	return ids
}
