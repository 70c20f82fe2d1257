package validator_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authinput/pkg/passwordpolicy"
	"github.com/dmitrymomot/authinput/pkg/validator"
)

func allValidators() map[string]validator.Validator {
	return map[string]validator.Validator{
		"non-empty":            validator.NonEmpty(),
		"one-time password":    validator.OneTimePassword(),
		"default username":     validator.Username(),
		"constrained username": validator.UsernameWithConstraints(3, 8, validator.Auth0UsernameChars),
		"email":                validator.Email(),
	}
}

func TestValidators_EmptyInput(t *testing.T) {
	t.Parallel()

	for name, v := range allValidators() {
		v := v
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, value := range []string{"", " ", "\t", " \n ", "  "} {
				err := v.Validate(value)
				assert.ErrorIs(t, err, validator.ErrEmptyInput, "value %q", value)
				verr, ok := validator.AsValidationError(err)
				require.True(t, ok)
				assert.Nil(t, verr.Results)
			}
			assert.ErrorIs(t, validator.ValidatePtr(v, nil), validator.ErrEmptyInput)
		})
	}
}

func TestValidatePtr(t *testing.T) {
	t.Parallel()

	value := "user@example.com"
	assert.NoError(t, validator.ValidatePtr(validator.Email(), &value))

	bad := "user@"
	assert.ErrorIs(t, validator.ValidatePtr(validator.Email(), &bad), validator.ErrInvalidEmail)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	called := ""
	v := validator.Func(func(value string) error {
		called = value
		return nil
	})

	require.NoError(t, v.Validate("  raw  "))
	assert.Equal(t, "  raw  ", called)
}

func TestNonEmpty(t *testing.T) {
	t.Parallel()
	v := validator.NonEmpty()

	assert.NoError(t, v.Validate("a"))
	assert.NoError(t, v.Validate("  text  "))
	assert.NoError(t, v.Validate("!"))
}

func TestOneTimePassword(t *testing.T) {
	t.Parallel()
	v := validator.OneTimePassword()

	tests := []struct {
		value string
		want  error
	}{
		{"123456", nil},
		{" 123456 ", nil},
		{"12ab", nil},
		{"a1", nil},
		{"abcdef", validator.ErrInvalidOneTimePassword},
		{"--", validator.ErrInvalidOneTimePassword},
		{"", validator.ErrEmptyInput},
		{"   ", validator.ErrEmptyInput},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.value)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUsername_Default(t *testing.T) {
	t.Parallel()
	v := validator.Username()

	assert.Equal(t, 1, v.Min())
	assert.Greater(t, v.Max(), 1<<30)

	for _, value := range []string{"a", "john.doe@example.com", "名前", "has space inside", "!!!"} {
		assert.NoError(t, v.Validate(value), "value %q", value)
	}
}

func TestUsername_WithConstraints(t *testing.T) {
	t.Parallel()
	v := validator.UsernameWithConstraints(3, 8, validator.Auth0UsernameChars)

	assert.Equal(t, 3, v.Min())
	assert.Equal(t, 8, v.Max())

	tests := []struct {
		value string
		want  error
	}{
		{"abc", nil},
		{"john_doe", nil},
		{"  john  ", nil},
		{"ñandú", nil},
		{"user42", nil},
		{"abc_1", nil},
		{"e\u0301e\u0301e", nil},
		{"ab", validator.ErrInvalidUsername},
		{"ab\u0301", validator.ErrInvalidUsername},
		{"e\u0301e", validator.ErrInvalidUsername},
		{"abc!23", validator.ErrInvalidUsername},
		{"123456789", validator.ErrInvalidUsername},
		{"abcdefghi", validator.ErrInvalidUsername},
		{"john-doe", validator.ErrInvalidUsername},
		{"john doe", validator.ErrInvalidUsername},
		{"a@b.com", validator.ErrInvalidUsername},
		{"", validator.ErrEmptyInput},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			err := v.Validate(tt.value)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUsername_CountsUserPerceivedCharacters(t *testing.T) {
	t.Parallel()
	exact := validator.UsernameWithConstraints(2, 2, validator.Auth0UsernameChars)

	assert.NoError(t, exact.Validate("e\u0301e"))
	assert.NoError(t, exact.Validate("\u00e9e"))
	assert.ErrorIs(t, exact.Validate("e\u0301e\u0301e"), validator.ErrInvalidUsername)

	bounded := validator.UsernameWithConstraints(3, 8, validator.Auth0UsernameChars)
	assert.ErrorIs(t, bounded.Validate("ab\u0301"), validator.ErrInvalidUsername)
	assert.NoError(t, bounded.Validate("ab\u0301c"))

	noCharset := validator.UsernameWithConstraints(3, 3, nil)
	assert.ErrorIs(t, noCharset.Validate("a\u0301b"), validator.ErrEmptyInput)
}

func TestUsername_LengthWithoutCharacterSet(t *testing.T) {
	t.Parallel()
	v := validator.UsernameWithConstraints(3, 5, nil)

	assert.NoError(t, v.Validate("a-b"))
	assert.ErrorIs(t, v.Validate("ab"), validator.ErrEmptyInput)
	assert.ErrorIs(t, v.Validate("abcdef"), validator.ErrEmptyInput)
}

func TestAuth0UsernameChars(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{'a', 'Z', '0', '_', 'é', '\u0301', '٣'} {
		assert.True(t, validator.Auth0UsernameChars(r), "rune %q", r)
	}
	for _, r := range []rune{'-', '.', ' ', '@', '+'} {
		assert.False(t, validator.Auth0UsernameChars(r), "rune %q", r)
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()
	v := validator.Email()

	valid := []string{
		"user@example.com",
		"  user@example.com  ",
		"USER@EXAMPLE.COM",
		"first.last+tag@sub.example.co",
		"o'brien@example.io",
		"x@a.b",
		"user@my-host.example",
	}
	for _, value := range valid {
		assert.NoError(t, v.Validate(value), "value %q", value)
	}

	invalid := []string{
		"user@",
		"@example.com",
		"user",
		"user@example",
		"user@@example.com",
		"user@-example.com",
		"user@example-.com",
		".user@example.com",
		"user.@example.com",
		"us..er@example.com",
		"user name@example.com",
		"user@exa mple.com",
		"usér@example.com",
		"user@\u212Aelvin.com",
		"prefix user@example.com",
	}
	for _, value := range invalid {
		assert.ErrorIs(t, v.Validate(value), validator.ErrInvalidEmail, "value %q", value)
	}
}

func TestPasswordPolicy(t *testing.T) {
	t.Parallel()

	policy := passwordpolicy.New("custom",
		passwordpolicy.Length(8, 64, "length"),
		passwordpolicy.Contains(passwordpolicy.Digits, "digit"),
		passwordpolicy.Contains(passwordpolicy.Uppercase, "upper"),
	)
	v := validator.PasswordPolicy(policy)

	t.Run("accepts when every rule passes", func(t *testing.T) {
		assert.NoError(t, v.Validate("Password1"))
	})

	t.Run("reports every rule when one fails", func(t *testing.T) {
		err := v.Validate("password1")
		require.ErrorIs(t, err, validator.ErrPasswordPolicyViolation)

		var verr validator.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Results, 3)
		assert.True(t, verr.Results[0].Valid)
		assert.True(t, verr.Results[1].Valid)
		assert.False(t, verr.Results[2].Valid)
	})

	t.Run("empty password is judged by the policy", func(t *testing.T) {
		err := v.Validate("   ")
		require.ErrorIs(t, err, validator.ErrPasswordPolicyViolation)
		verr, _ := validator.AsValidationError(err)
		assert.Len(t, verr.Results, 3)
	})

	t.Run("input is trimmed", func(t *testing.T) {
		checklist := v.Checklist("  Pass1  ")
		assert.False(t, checklist[0].Valid)
	})

	t.Run("zero rule policy accepts", func(t *testing.T) {
		assert.NoError(t, validator.PasswordPolicy(passwordpolicy.New("open")).Validate(""))
	})

	t.Run("exposes policy", func(t *testing.T) {
		assert.Equal(t, "custom", v.Policy().Name)
	})
}

func TestValidators_Deterministic(t *testing.T) {
	t.Parallel()

	v := validator.PasswordPolicy(passwordpolicy.Good(nil))
	inputs := []string{"", "weak", "Str0ng!pass"}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, in := range inputs {
				assert.Equal(t, v.Validate(in), v.Validate(in))
			}
			for name, other := range allValidators() {
				assert.Equal(t, other.Validate("value"), other.Validate("value"), name)
			}
		}()
	}
	wg.Wait()
}
