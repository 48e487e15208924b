package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the maximum accepted JSON body (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON binds a JSON object of string values into a *map[string]string.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		dst, err := target(v)
		if err != nil {
			return err
		}

		mt, err := mediaType(r)
		if err != nil {
			return fmt.Errorf("%w: expected %s", err, MIMEApplicationJSON)
		}
		if mt != MIMEApplicationJSON {
			return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, MIMEApplicationJSON)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxJSONSize)
		}
		if len(body) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		values := map[string]string{}
		if err := json.Unmarshal(body, &values); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				return fmt.Errorf("%w: expected an object of string values, got %s", ErrFailedToParseJSON, typeErr.Value)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		if values == nil {
			values = map[string]string{}
		}
		*dst = values
		return nil
	}
}
