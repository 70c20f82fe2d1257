package connection

import (
	"github.com/dmitrymomot/authinput/pkg/i18n"
	"github.com/dmitrymomot/authinput/pkg/message"
	"github.com/dmitrymomot/authinput/pkg/passwordpolicy"
	"github.com/dmitrymomot/authinput/pkg/validator"
)

// Username limits applied when a connection requires a username but does
// not set its own.
const (
	DefaultUsernameMin = 1
	DefaultUsernameMax = 15
)

// UsernameRange is the inclusive length range of usernames.
type UsernameRange struct {
	Min int `json:"min" yaml:"min" validate:"gte=1"`
	Max int `json:"max" yaml:"max" validate:"gtefield=Min"`
}

// Validation holds per-field validation settings.
type Validation struct {
	Username *UsernameRange `json:"username,omitempty" yaml:"username,omitempty"`
}

// Database describes an Auth0 database connection.
type Database struct {
	Name             string     `json:"name" yaml:"name" validate:"required"`
	RequiresUsername bool       `json:"requires_username" yaml:"requires_username"`
	PasswordPolicy   string     `json:"passwordPolicy,omitempty" yaml:"passwordPolicy,omitempty" validate:"omitempty,passwordpolicy"`
	Validation       Validation `json:"validation" yaml:"validation"`
}

// Validate checks the settings against their struct rules.
func (d Database) Validate() error {
	return validateStruct(d)
}

// UsernameBounds returns the configured username range, or the defaults.
func (d Database) UsernameBounds() (min, max int) {
	if r := d.Validation.Username; r != nil {
		return r.Min, r.Max
	}
	return DefaultUsernameMin, DefaultUsernameMax
}

// Policy returns the named password policy of the connection with messages
// rendered by loc. An unset policy means "none".
func (d Database) Policy(loc i18n.Localizer) (passwordpolicy.Policy, error) {
	name := d.PasswordPolicy
	if name == "" {
		name = passwordpolicy.NameNone
	}
	return passwordpolicy.ByName(name, loc)
}

// Validators is the set of field validators for one connection.
type Validators struct {
	Email           validator.EmailValidator
	Username        validator.UsernameValidator
	Password        validator.PasswordPolicyValidator
	OneTimePassword validator.Validator
	NonEmpty        validator.Validator
}

// ByField returns the validator for a form field name: email, username,
// password, otp or text.
func (v Validators) ByField(field string) (validator.Validator, bool) {
	switch field {
	case "email":
		return v.Email, true
	case "username":
		return v.Username, true
	case "password":
		return v.Password, true
	case "otp":
		return v.OneTimePassword, true
	case "text":
		return v.NonEmpty, true
	}
	return nil, false
}

// Validators builds the field validators of the connection. Password rule
// descriptions are rendered by loc.
func (d Database) Validators(loc i18n.Localizer) (Validators, error) {
	policy, err := d.Policy(loc)
	if err != nil {
		return Validators{}, err
	}

	username := validator.Username()
	if d.RequiresUsername {
		min, max := d.UsernameBounds()
		username = validator.UsernameWithConstraints(min, max, validator.Auth0UsernameChars)
	}

	return Validators{
		Email:           validator.Email(),
		Username:        username,
		Password:        validator.PasswordPolicy(policy),
		OneTimePassword: validator.OneTimePassword(),
		NonEmpty:        validator.NonEmpty(),
	}, nil
}

// MessageContext returns the context used to resolve error messages for
// this connection.
func (d Database) MessageContext(loc i18n.Localizer) message.Context {
	min, max := d.UsernameBounds()
	return message.Context{
		Username:  message.UsernameBounds{Min: min, Max: max},
		Localizer: loc,
	}
}
