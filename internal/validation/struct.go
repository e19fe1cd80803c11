package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/lending-library/internal/apperrors"
)

// Struct tags backed by the rules in this package.
const (
	TagUsername   = "username"
	TagPassword   = "password"
	TagPersonName = "personname"
	TagEmail      = "libemail"
)

var (
	validate *validator.Validate

	rules = map[string]func(string) error{
		TagUsername:   Username,
		TagPassword:   Password,
		TagPersonName: Name,
		TagEmail:      Email,
	}
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, rule := range rules {
		// Registration only fails on an empty tag name or nil func.
		_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String()) == nil
		})
	}
}

// Struct validates v against its `validate` tags. The first failing field is
// reported as a validation AppError carrying that field's rule message.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return apperrors.NewValidationError("Validation failed", err.Error())
	}

	fe := fieldErrors[0]
	return apperrors.NewValidationError(fieldMessage(fe), fe.Field())
}

func fieldMessage(fe validator.FieldError) string {
	if rule, ok := rules[fe.Tag()]; ok {
		if err := rule(fmt.Sprint(fe.Value())); err != nil {
			return err.Error()
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for '%s'", fe.Field(), fe.Tag())
	}
}
