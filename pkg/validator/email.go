package validator

import "regexp"

// emailPattern lists both letter cases instead of using (?i), which would
// also fold non-ASCII runes such as U+212A onto 'k'.
const emailPattern = "^[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+(?:\\.[a-zA-Z0-9!#$%&'*+/=?^_`{|}~-]+)*" +
	"@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$"

// EmailValidator matches the whole trimmed value against a simplified
// RFC 5322 address grammar.
type EmailValidator struct {
	re *regexp.Regexp
}

// Email compiles the address grammar once for the returned validator.
func Email() EmailValidator {
	return EmailValidator{re: regexp.MustCompile(emailPattern)}
}

func (v EmailValidator) Validate(value string) error {
	value, ok := trimmed(value)
	if !ok {
		return ErrEmptyInput
	}
	if !v.re.MatchString(value) {
		return ErrInvalidEmail
	}
	return nil
}
