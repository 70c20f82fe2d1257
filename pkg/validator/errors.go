package validator

import (
	"errors"

	"github.com/dmitrymomot/authinput/pkg/passwordpolicy"
)

// Kind identifies why a value was rejected.
type Kind uint8

const (
	KindEmptyInput Kind = iota + 1
	KindInvalidEmail
	KindInvalidUsername
	KindInvalidOneTimePassword
	KindPasswordPolicyViolation
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty_input"
	case KindInvalidEmail:
		return "invalid_email"
	case KindInvalidUsername:
		return "invalid_username"
	case KindInvalidOneTimePassword:
		return "invalid_one_time_password"
	case KindPasswordPolicyViolation:
		return "password_policy_violation"
	}
	return "unknown"
}

// ValidationError is the only error type returned by validators. Results is
// set for KindPasswordPolicyViolation only and holds one result per policy
// rule, in rule order.
type ValidationError struct {
	Kind    Kind
	Results []passwordpolicy.RuleResult
}

func (e ValidationError) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "empty input"
	case KindInvalidEmail:
		return "invalid email"
	case KindInvalidUsername:
		return "invalid username"
	case KindInvalidOneTimePassword:
		return "invalid one-time password"
	case KindPasswordPolicyViolation:
		return "password policy violation"
	}
	return "validation failed"
}

// Is reports whether target is a ValidationError of the same kind, so
// errors.Is(err, ErrEmptyInput) works regardless of Results.
func (e ValidationError) Is(target error) bool {
	var t ValidationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrEmptyInput              = ValidationError{Kind: KindEmptyInput}
	ErrInvalidEmail            = ValidationError{Kind: KindInvalidEmail}
	ErrInvalidUsername         = ValidationError{Kind: KindInvalidUsername}
	ErrInvalidOneTimePassword  = ValidationError{Kind: KindInvalidOneTimePassword}
	ErrPasswordPolicyViolation = ValidationError{Kind: KindPasswordPolicyViolation}
)

// PolicyViolation builds the error reported for a failed password policy.
func PolicyViolation(results []passwordpolicy.RuleResult) ValidationError {
	return ValidationError{Kind: KindPasswordPolicyViolation, Results: results}
}

// AsValidationError extracts a ValidationError from err.
func AsValidationError(err error) (ValidationError, bool) {
	var verr ValidationError
	if err == nil || !errors.As(err, &verr) {
		return ValidationError{}, false
	}
	return verr, true
}
