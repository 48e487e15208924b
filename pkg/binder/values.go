package binder

import (
	"fmt"
	"net/http"
)

// Values dispatches to Signals for datastar requests, otherwise to Form or
// JSON based on the request Content-Type.
func Values() func(r *http.Request, v any) error {
	form, jsonBinder, signals := Form(), JSON(), Signals()

	return func(r *http.Request, v any) error {
		if IsDatastar(r) {
			return signals(r, v)
		}

		mt, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected %s, %s or %s", err, MIMEApplicationForm, MIMEMultipartForm, MIMEApplicationJSON)
		}

		switch mt {
		case MIMEApplicationForm, MIMEMultipartForm:
			return form(r, v)
		case MIMEApplicationJSON:
			return jsonBinder(r, v)
		default:
			return fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mt)
		}
	}
}
