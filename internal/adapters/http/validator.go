package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their form tag so error keys line up with
// the input names the templates render.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

var fieldMessages = map[string]string{
	"required": "The %[1]s field is required.",
	"email":    "The %[1]s must be a valid email address.",
	"min":      "The %[1]s must be at least %[2]s characters.",
	"max":      "The %[1]s may not be greater than %[2]s characters.",
	"eqfield":  "The %[1]s and %[2]s must match.",
	"numeric":  "The %[1]s must be a number.",
	"number":   "The %[1]s must be a whole number.",
}

// ValidateStruct returns form field name -> message, or nil when payload is
// valid.
func ValidateStruct(payload any) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs
	}

	for _, fe := range validationErrors {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}

		format, ok := fieldMessages[fe.Tag()]
		if !ok {
			format = "The %[1]s field is invalid."
		}

		param := fe.Param()
		if fe.Tag() == "eqfield" {
			param = strings.ToLower(param)
		}

		errs[field] = fmt.Sprintf(format, fieldLabel(field), param)
	}

	return errs
}

func fieldLabel(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}
