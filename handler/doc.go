// Package handler provides typed HTTP handlers for the validation service.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap adapts it to http.HandlerFunc, running binders, decorators
// and the error handler:
//
//	h := handler.HandlerFunc[handler.Context, map[string]string](
//		func(ctx handler.Context, values map[string]string) handler.Response {
//			return handler.Report(form.Validate(values), "Saved")
//		},
//	)
//	mux.Post("/validate", handler.Wrap(h, handler.WithBinders[handler.Context, map[string]string](binder.Values())))
//
// # Responses
//
// JSON and JSONError write the JSONResponse envelope. Templ and TemplMulti
// write HTML, or element patches over SSE for datastar requests. Report
// renders a validation report as JSON (200 when valid, 422 otherwise) or, for
// datastar, as signal and feedback patches.
//
// # Errors
//
// HTTPError carries a status code and a stable key. ValidationError holds
// per-field messages and maps to 422. NewErrorHandler classifies errors,
// including binder failures, logs them and answers in the request's format.
package handler
