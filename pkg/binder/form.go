package binder

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/formcheck/pkg/sanitizer"
)

// DefaultMaxMemory bounds the in-memory part of multipart parsing (10MB).
const DefaultMaxMemory = 10 << 20

// Form binds urlencoded or multipart form fields into a *map[string]string.
// Query string parameters are ignored; only the body is read.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		dst, err := target(v)
		if err != nil {
			return err
		}

		mt, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected %s or %s", err, MIMEApplicationForm, MIMEMultipartForm)
		}

		switch mt {
		case MIMEApplicationForm:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			*dst = sanitizer.FirstValues(r.PostForm)

		case MIMEMultipartForm:
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			if r.MultipartForm != nil {
				*dst = sanitizer.FirstValues(r.MultipartForm.Value)
			} else {
				*dst = map[string]string{}
			}

		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mt, MIMEApplicationForm, MIMEMultipartForm)
		}

		return nil
	}
}
