package formspec

import "errors"

var (
	ErrInvalidDocument = errors.New("invalid form spec document")
	ErrUnknownRule     = errors.New("unknown rule")
	ErrMissingParam    = errors.New("missing rule parameter")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrUnknownField    = errors.New("rule references unknown field")
)
