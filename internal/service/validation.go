package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// notblank: the string holds at least one non-space rune.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), func(r rune) bool { return !unicode.IsSpace(r) }) >= 0
	})
	return v
}

// validateRequest checks struct tags on a request message and returns a
// CodeInvalidArgument error listing every failing field.
func validateRequest(msg any) error {
	err := validate.Struct(msg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	problems := make([]string, len(verrs))
	for i, e := range verrs {
		problems[i] = fieldErrorToString(e)
	}
	return connect.NewError(connect.CodeInvalidArgument,
		fmt.Errorf("invalid input: %s", strings.Join(problems, "; ")))
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Namespace())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Namespace())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", e.Namespace())
		}
		return fmt.Sprintf("%s is too short", e.Namespace())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Namespace(), e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", e.Namespace(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", e.Namespace(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must not be negative", e.Namespace())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Namespace(), e.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", e.Namespace(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Namespace())
	}
}
