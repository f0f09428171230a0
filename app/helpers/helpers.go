package helpers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s es obligatorio.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s debe ser un número.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s debe tener al menos %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s debe tener como máximo %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validación %s falló en el campo %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

// ValidationMessage aplana los errores de validación en una sola
// línea para la respuesta genérica del API.
func ValidationMessage(errs validator.ValidationErrors) string {
	formatted := FormatValidationErrors(errs)
	parts := make([]string, 0, len(formatted))
	for _, msg := range formatted {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " ")
}
