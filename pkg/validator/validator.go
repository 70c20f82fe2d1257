package validator

import "strings"

// Validator checks a single raw field value. A nil return means the value is
// acceptable; any other return is a ValidationError.
type Validator interface {
	Validate(value string) error
}

// Func adapts a plain function to the Validator interface.
type Func func(value string) error

func (f Func) Validate(value string) error {
	return f(value)
}

// ValidatePtr validates an optional value. A nil pointer is treated as the
// empty string.
func ValidatePtr(v Validator, value *string) error {
	if value == nil {
		return v.Validate("")
	}
	return v.Validate(*value)
}

// trimmed returns value without surrounding unicode whitespace and reports
// whether anything is left.
func trimmed(value string) (string, bool) {
	value = strings.TrimSpace(value)
	return value, value != ""
}
