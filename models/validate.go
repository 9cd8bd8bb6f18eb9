package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their JSON names, so messages read the same
// as the seed file.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// tagErrors runs the struct tag rules on v and returns one error per failed
// field.
func tagErrors(v any) []error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []error{err}
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, errors.New(describe(fe)))
	}
	return errs
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be positive, got %v", field, fe.Value())
		}
		return fmt.Sprintf("%s must be greater than %s, got %v", field, fe.Param(), fe.Value())
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must not be negative, got %v", field, fe.Value())
		}
		return fmt.Sprintf("%s must be at least %s, got %v", field, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must contain at least %s", field, fe.Param())
	case "unique":
		return field + " must not contain duplicates"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("%s failed the %q rule", field, fe.Tag())
}
