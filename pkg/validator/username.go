package validator

import (
	"math"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// CharPredicate reports whether a rune is allowed.
type CharPredicate func(r rune) bool

// Auth0UsernameChars allows unicode letters, combining marks, numbers and
// the underscore.
func Auth0UsernameChars(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

// UsernameValidator checks the length and, optionally, the characters of a
// username. Lengths are counted in user-perceived characters (grapheme
// clusters), so "e\u0301" is one character.
type UsernameValidator struct {
	min, max int
	allowed  CharPredicate
}

// Username accepts any non-empty username.
func Username() UsernameValidator {
	return UsernameValidator{min: 1, max: math.MaxInt}
}

// UsernameWithConstraints limits usernames to [min, max] characters drawn from
// allowed. A nil allowed skips the character check.
func UsernameWithConstraints(min, max int, allowed CharPredicate) UsernameValidator {
	return UsernameValidator{min: min, max: max, allowed: allowed}
}

func (v UsernameValidator) Min() int { return v.min }
func (v UsernameValidator) Max() int { return v.max }

func (v UsernameValidator) Validate(value string) error {
	value, ok := trimmed(value)
	if !ok {
		return ErrEmptyInput
	}

	n := uniseg.GraphemeClusterCount(value)
	if n < v.min || n > v.max {
		// Without a character set there is nothing more specific to report.
		if v.allowed == nil {
			return ErrEmptyInput
		}
		return ErrInvalidUsername
	}

	if v.allowed != nil && strings.IndexFunc(value, func(r rune) bool { return !v.allowed(r) }) >= 0 {
		return ErrInvalidUsername
	}
	return nil
}
