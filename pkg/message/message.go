package message

import (
	"errors"
	"strconv"

	"github.com/dmitrymomot/authinput/pkg/i18n"
	"github.com/dmitrymomot/authinput/pkg/validator"
)

// Lookup keys and default texts for validation failures.
var (
	EmptyInput = i18n.NewMessage(
		"com.auth0.lock.input.empty.error",
		"Must not be empty",
	)
	InvalidEmail = i18n.NewMessage(
		"com.auth0.lock.input.email.error",
		"Must be a valid email address",
	)
	InvalidUsername = i18n.NewMessage(
		"com.auth0.lock.input.username.error",
		"Can only contain between %{min} to %{max} alphanumeric characters and '_'.",
	)
	InvalidOneTimePassword = i18n.NewMessage(
		"com.auth0.lock.input.otp.error",
		"Must be a valid numeric code",
	)
)

// UsernameBounds are the limits quoted by the username error.
type UsernameBounds struct {
	Min int
	Max int
}

// Context carries what Resolve needs beyond the error itself.
type Context struct {
	Username  UsernameBounds
	Localizer i18n.Localizer
}

// For returns the message describing err. ok is false for password-policy
// failures, whose text comes from the checklist instead.
func For(err validator.ValidationError, bounds UsernameBounds) (msg i18n.Message, ok bool) {
	switch err.Kind {
	case validator.KindInvalidEmail:
		return InvalidEmail, true
	case validator.KindInvalidUsername:
		return InvalidUsername.With(
			"min", strconv.Itoa(bounds.Min),
			"max", strconv.Itoa(bounds.Max),
		), true
	case validator.KindInvalidOneTimePassword:
		return InvalidOneTimePassword, true
	case validator.KindPasswordPolicyViolation:
		// A checklist with a single entry carries no summary line.
		if len(err.Results) < 2 {
			return EmptyInput, true
		}
		return i18n.Message{}, false
	}
	return EmptyInput, true
}

// Resolve returns the display text for err.
func Resolve(err validator.ValidationError, ctx Context) string {
	msg, ok := For(err, ctx.Username)
	if !ok {
		return err.Results[0].Message
	}
	loc := ctx.Localizer
	if loc == nil {
		loc = i18n.Defaults
	}
	return loc.Localize(msg)
}

// ResolveError resolves any error wrapping a validator.ValidationError.
func ResolveError(err error, ctx Context) (string, bool) {
	var verr validator.ValidationError
	if err == nil || !errors.As(err, &verr) {
		return "", false
	}
	return Resolve(verr, ctx), true
}
