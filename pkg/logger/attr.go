package logger

import (
	"fmt"
	"log/slog"
)

// Error records err under "error". A nil err yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records the form field being validated.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

func Locale(tag string) slog.Attr {
	return slog.String("locale", tag)
}

// Kind records a validation failure kind, usually a validator.Kind.
func Kind(kind fmt.Stringer) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("kind", kind.String())
}
