package connection

import (
	"errors"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/authinput/pkg/passwordpolicy"
)

var structValidator = sync.OnceValue(func() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	_ = v.RegisterValidation("passwordpolicy", func(fl playground.FieldLevel) bool {
		return passwordpolicy.Known(fl.Field().String())
	})
	return v
})

func validateStruct(s any) error {
	if err := structValidator().Struct(s); err != nil {
		return errors.Join(ErrInvalidSettings, err)
	}
	return nil
}
