// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: validate}
}

// Validate checks i against its validate struct tags
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return errors.New(formatFieldErrors(fieldErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

func formatFieldErrors(fieldErrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		message := fieldErr.Namespace() + " failed on " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			message += "=" + fieldErr.Param()
		}
		messages = append(messages, message)
	}

	return strings.Join(messages, "; ")
}
