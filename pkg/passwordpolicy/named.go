package passwordpolicy

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/dmitrymomot/authinput/pkg/i18n"
)

// Policy names as reported by Auth0 database connections.
const (
	NameNone      = "none"
	NameLow       = "low"
	NameFair      = "fair"
	NameGood      = "good"
	NameExcellent = "excellent"
)

// Rule descriptions used by the named policies.
var (
	MessageLength = i18n.NewMessage(
		"com.auth0.lock.password_policy.length",
		"At least %{count} characters in length",
	)
	MessageAtLeast = i18n.NewMessage(
		"com.auth0.lock.password_policy.at_least",
		"Contain at least %{count} of the following %{total} types of characters:",
	)
	MessageLowercase = i18n.NewMessage(
		"com.auth0.lock.password_policy.lowercase",
		"Lower case letters (a-z)",
	)
	MessageUppercase = i18n.NewMessage(
		"com.auth0.lock.password_policy.uppercase",
		"Upper case letters (A-Z)",
	)
	MessageNumbers = i18n.NewMessage(
		"com.auth0.lock.password_policy.numbers",
		"Numbers (i.e. 0-9)",
	)
	MessageSpecial = i18n.NewMessage(
		"com.auth0.lock.password_policy.special",
		"Special characters (e.g. !@#$%^&*)",
	)
	MessageIdentical = i18n.NewMessage(
		"com.auth0.lock.password_policy.identical_chars",
		"No more than %{count} identical characters in a row (e.g., \"%{example}\" not allowed)",
	)
)

var names = []string{NameNone, NameLow, NameFair, NameGood, NameExcellent}

// Names lists the named policies from weakest to strongest.
func Names() []string {
	return slices.Clone(names)
}

// Known reports whether name is one of Names().
func Known(name string) bool {
	return slices.Contains(names, name)
}

// ByName builds the named policy with descriptions rendered by loc.
func ByName(name string, loc i18n.Localizer) (Policy, error) {
	switch name {
	case NameNone:
		return None(loc), nil
	case NameLow:
		return Low(loc), nil
	case NameFair:
		return Fair(loc), nil
	case NameGood:
		return Good(loc), nil
	case NameExcellent:
		return Excellent(loc), nil
	}
	return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// None requires a non-empty password.
func None(loc i18n.Localizer) Policy {
	loc = orDefaults(loc)
	return New(NameNone, minLength(loc, 1))
}

// Low requires at least 6 characters.
func Low(loc i18n.Localizer) Policy {
	loc = orDefaults(loc)
	return New(NameLow, minLength(loc, 6))
}

// Fair requires at least 8 characters with lower case, upper case and digits.
func Fair(loc i18n.Localizer) Policy {
	loc = orDefaults(loc)
	return New(NameFair,
		minLength(loc, 8),
		characterTypes(loc, 3,
			Contains(Lowercase, loc.Localize(MessageLowercase)),
			Contains(Uppercase, loc.Localize(MessageUppercase)),
			Contains(Digits, loc.Localize(MessageNumbers)),
		),
	)
}

// Good requires at least 8 characters and 3 of 4 character types.
func Good(loc i18n.Localizer) Policy {
	loc = orDefaults(loc)
	return New(NameGood,
		minLength(loc, 8),
		characterTypes(loc, 3, fourTypes(loc)...),
	)
}

// Excellent requires at least 10 characters, 3 of 4 character types and no
// more than 2 identical characters in a row.
func Excellent(loc i18n.Localizer) Policy {
	loc = orDefaults(loc)
	return New(NameExcellent,
		minLength(loc, 10),
		characterTypes(loc, 3, fourTypes(loc)...),
		MaxConsecutiveRepeats(2, loc.Localize(MessageIdentical.With("count", "2", "example", "aaa"))),
	)
}

func orDefaults(loc i18n.Localizer) i18n.Localizer {
	if loc == nil {
		return i18n.Defaults
	}
	return loc
}

func minLength(loc i18n.Localizer, n int) Rule {
	return Length(n, math.MaxInt, loc.Localize(MessageLength.With("count", strconv.Itoa(n))))
}

func characterTypes(loc i18n.Localizer, min int, rules ...Rule) Rule {
	msg := MessageAtLeast.With("count", strconv.Itoa(min), "total", strconv.Itoa(len(rules)))
	return AtLeast(min, loc.Localize(msg), rules...)
}

func fourTypes(loc i18n.Localizer) []Rule {
	return []Rule{
		Contains(Lowercase, loc.Localize(MessageLowercase)),
		Contains(Uppercase, loc.Localize(MessageUppercase)),
		Contains(Digits, loc.Localize(MessageNumbers)),
		Contains(Special, loc.Localize(MessageSpecial)),
	}
}
