package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError is returned when the request body does not pass validation.
type ValidationError struct {
	Messages []string
}

func (e ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func newValidationError(errs validator.ValidationErrors) ValidationError {
	v := ValidationError{}
	for _, e := range errs {
		v.Messages = append(v.Messages, ValidationErrorText(e))
	}

	return v
}

func newSliceValidationError(errs binding.SliceValidationError) ValidationError {
	v := ValidationError{}
	for _, err := range errs {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			v.Messages = append(v.Messages, err.Error())
			continue
		}

		for _, e := range ve {
			v.Messages = append(v.Messages, ValidationErrorText(e))
		}
	}

	return v
}

// ValidationErrorText returns a human readable message for a failed validation.
func ValidationErrorText(e validator.FieldError) string {
	field := jsonName(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of '%s'", field, strings.ReplaceAll(e.Param(), " ", "', '"))
	case "hexcolor":
		return fmt.Sprintf("%s must be a color in the format #rrggbb", field)
	case "iso4217":
		return fmt.Sprintf("%s must be an ISO 4217 currency code", field)
	}

	return fmt.Sprintf("%s is not valid", field)
}

// jsonName lowercases the first letter of a struct field name.
func jsonName(field string) string {
	if field == "" {
		return field
	}

	return strings.ToLower(field[:1]) + field[1:]
}
