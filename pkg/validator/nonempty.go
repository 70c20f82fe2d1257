package validator

// NonEmpty accepts any value with at least one non-whitespace character.
func NonEmpty() Validator {
	return Func(func(value string) error {
		if _, ok := trimmed(value); !ok {
			return ErrEmptyInput
		}
		return nil
	})
}
