// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"marketplace/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the marketplace rules registered.
// Field errors are reported under their json or query names.
// It panics if a rule cannot be registered.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	if err := v.RegisterValidation("order_status", validateOrderStatus); err != nil {
		panic(errors.Wrap(err, "failed to register order_status validation"))
	}

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return entity.OrderStatus(fl.Field().String()).IsValid()
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}
