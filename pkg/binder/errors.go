package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrInvalidTarget        = errors.New("bind target must be a non-nil *map[string]string")

	// ErrBinderNotApplicable lets a chain of binders skip one that does not
	// handle the request.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
