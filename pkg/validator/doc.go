// Package validator checks raw authentication form input: usernames, email
// addresses, one-time codes, passwords and generic required fields.
//
// Every validator implements the single-method Validator interface. Input is
// trimmed of surrounding unicode whitespace before any check and an empty
// result is always reported as ErrEmptyInput, except by the password
// validator, which lets its policy judge the empty string. Failures are
// ValidationError values carrying a Kind; password failures also carry the
// full per-rule checklist produced by the passwordpolicy package.
//
// Validators hold no mutable state and are safe for concurrent use.
//
// # Usage
//
//	email := validator.Email()
//	if err := email.Validate(input); err != nil {
//	    if errors.Is(err, validator.ErrEmptyInput) {
//	        // show the required-field hint
//	    }
//	}
//
// Several fields can be checked together with Form:
//
//	err := validator.NewForm().
//	    Field("email", validator.Email(), email).
//	    Field("password", validator.PasswordPolicy(policy), password).
//	    Validate()
//	if errs := validator.ExtractFieldErrors(err); errs.Has("email") {
//	    // ...
//	}
//
// # Error Handling
//
// ValidationError implements Is by comparing kinds, so errors.Is works with
// the package sentinels whatever the attached results. Use errors.As or
// AsValidationError to read Results.
package validator
