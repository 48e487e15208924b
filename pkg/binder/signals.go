package binder

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/starfederation/datastar-go/datastar"
)

// DatastarRequestHeader is set by the datastar client on every backend action.
const DatastarRequestHeader = "Datastar-Request"

// IsDatastar reports whether r was issued by a datastar action.
func IsDatastar(r *http.Request) bool {
	return r.Header.Get(DatastarRequestHeader) == "true"
}

// Signals binds the top-level string signals of a datastar request.
// Signals of other types (the validation state patched back to the page)
// are ignored. Non-datastar requests get ErrBinderNotApplicable.
//
// The attribute form data-bind-password-confirm names its signal
// passwordConfirm, so every camelCase key is also bound under its kebab-case
// field id unless that id was sent itself.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !IsDatastar(r) {
			return ErrBinderNotApplicable
		}

		dst, err := target(v)
		if err != nil {
			return err
		}

		var raw map[string]any
		if err := datastar.ReadSignals(r, &raw); err != nil {
			return errors.Join(ErrFailedToParseJSON, fmt.Errorf("read signals: %w", err))
		}

		out := make(map[string]string, len(raw))
		for k, val := range raw {
			if s, ok := val.(string); ok {
				out[k] = s
			}
		}
		aliases := make(map[string]string)
		for k, val := range out {
			if id := kebabCase(k); id != k {
				aliases[id] = val
			}
		}
		for id, val := range aliases {
			if _, ok := out[id]; !ok {
				out[id] = val
			}
		}
		*dst = out
		return nil
	}
}

// kebabCase turns a camelCase signal name into a field id:
// passwordConfirm becomes password-confirm.
func kebabCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
