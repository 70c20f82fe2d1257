package validator

import (
	"errors"
	"strings"
)

// FieldError ties a validation failure to the form field that produced it.
type FieldError struct {
	Field string
	Err   error
}

func (fe FieldError) Error() string {
	return fe.Field + ": " + fe.Err.Error()
}

func (fe FieldError) Unwrap() error {
	return fe.Err
}

// FieldErrors collects the failures of a form, in field order.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the per-field errors to errors.Is and errors.As.
func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, len(fe))
	for i, err := range fe {
		errs[i] = err
	}
	return errs
}

func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the error recorded for field, or nil.
func (fe FieldErrors) Get(field string) error {
	for _, err := range fe {
		if err.Field == field {
			return err.Err
		}
	}
	return nil
}

func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for _, err := range fe {
		fields = append(fields, err.Field)
	}
	return fields
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

type formField struct {
	name      string
	validator Validator
	value     string
}

// Form validates several fields at once. A field name added twice keeps the
// last value.
type Form struct {
	fields []formField
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// Field registers a field. It returns the form for chaining.
func (f *Form) Field(name string, v Validator, value string) *Form {
	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i] = formField{name: name, validator: v, value: value}
			return f
		}
	}
	f.fields = append(f.fields, formField{name: name, validator: v, value: value})
	return f
}

// Validate runs every field validator and returns FieldErrors, or nil when
// all fields are acceptable.
func (f *Form) Validate() error {
	var errs FieldErrors
	for _, field := range f.fields {
		if err := field.validator.Validate(field.value); err != nil {
			errs = append(errs, FieldError{Field: field.name, Err: err})
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// CanSubmit reports whether every field passes.
func (f *Form) CanSubmit() bool {
	return f.Validate() == nil
}

// ExtractFieldErrors returns the FieldErrors carried by err, if any.
func ExtractFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}
	var errs FieldErrors
	if errors.As(err, &errs) {
		return errs
	}
	return nil
}
