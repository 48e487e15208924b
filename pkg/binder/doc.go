// Package binder extracts raw field values from HTTP requests.
//
// The validation engine works on a flat map of field id to raw string value,
// so every binder here fills a *map[string]string:
//
//   - Form accepts application/x-www-form-urlencoded and multipart/form-data
//     bodies and keeps the first value of each field.
//   - JSON accepts an application/json object whose values are all strings.
//   - Values picks Form or JSON from the request's Content-Type.
//
// Binders return raw values untouched; trimming is the validator's job.
// Failures wrap the package sentinel errors so callers can map them to HTTP
// status codes with errors.Is.
//
//	var values map[string]string
//	if err := binder.Values()(r, &values); err != nil {
//	    // errors.Is(err, binder.ErrUnsupportedMediaType) -> 415, ...
//	}
//	report := form.Validate(values)
package binder
