package validator

import (
	"strings"
	"unicode"
)

// OneTimePassword accepts any non-empty value containing at least one decimal
// digit. Codes mixed with other characters are accepted.
func OneTimePassword() Validator {
	return Func(func(value string) error {
		value, ok := trimmed(value)
		if !ok {
			return ErrEmptyInput
		}
		if !strings.ContainsFunc(value, unicode.IsDigit) {
			return ErrInvalidOneTimePassword
		}
		return nil
	})
}
