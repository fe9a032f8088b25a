package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gameronce/commerce-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Field failures come back as
// a *domain.ValidationError so the central error handler renders them in the
// standard {"message", "errors"} envelope.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return domain.NewValidationError("Errores de validación", msgs...)
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a client-facing message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "El campo " + field + " es requerido"
	case "email":
		return "El campo " + field + " debe ser un email válido"
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor a %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("El campo %s debe ser mayor o igual a %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s debe tener al menos %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("El campo %s debe tener como máximo %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("El campo %s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("El campo %s no pasó la validación (%s)", field, fe.Tag())
	}
}
