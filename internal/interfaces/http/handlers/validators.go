package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"e-commerce.backend/internal/domain/validation"
)

// RegisterValidators installs the credential tags on gin's validator and
// reports fields by their wire names.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	v.RegisterTagNameFunc(wireName)

	if err := v.RegisterValidation("shop_email", func(fl validator.FieldLevel) bool {
		return validation.ValidateEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("shop_password", func(fl validator.FieldLevel) bool {
		return validation.ValidatePassword(fl.Field().String())
	})
}

func wireName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return field.Name
}
