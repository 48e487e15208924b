package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Form records the form name under "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Valid records the outcome of a validation pass under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// InvalidFields records the ids of failing fields under "invalid_fields".
// Field values are never logged.
func InvalidFields(ids ...string) slog.Attr {
	return slog.Any("invalid_fields", ids)
}
