package binder

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
	MIMEApplicationJSON = "application/json"
)

// mediaType returns the lower-cased media type of the request without parameters.
func mediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", ErrMissingContentType
	}

	mt := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mt = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mt)), nil
}

func target(v any) (*map[string]string, error) {
	m, ok := v.(*map[string]string)
	if !ok || m == nil {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, v)
	}
	return m, nil
}
