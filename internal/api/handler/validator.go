package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/auth-profile-api/internal/core/domain"
)

// bcryptMaxBytes is the longest input bcrypt accepts.
const bcryptMaxBytes = 72

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
// Failures are returned as *domain.ValidationError keyed by form field name.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= bcryptMaxBytes
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := domain.NewValidationError()
	for _, fe := range ve {
		out.Add(fe.Field(), fieldError(fe))
	}
	return out
}

// validationErrors turns the result of c.Validate into a ValidationError that
// later checks can add to. Non-validation errors are returned as is.
func validationErrors(err error) (*domain.ValidationError, error) {
	if err == nil {
		return domain.NewValidationError(), nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve, nil
	}
	return nil, err
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "bcryptmax":
		return fmt.Sprintf("The %s field must not be greater than %d bytes.", field, bcryptMaxBytes)
	case "eqfield":
		return fmt.Sprintf("The %s field confirmation does not match.", field)
	case "ip":
		return fmt.Sprintf("The %s field must be a valid IP address.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
