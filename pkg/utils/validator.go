package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// pakai nama json sebagai key error
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

func ValidateStruct(data any) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getSimpleErrorMessage(err)
		}
	}

	return errors
}

func getSimpleErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required", "required_if":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if err.Kind() == reflect.Int {
			return fmt.Sprintf("Minimum value is %s", err.Param())
		}
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		if err.Kind() == reflect.Int {
			return fmt.Sprintf("Maximum value is %s", err.Param())
		}
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	case "uuid":
		return "Must be a valid UUID"
	case "datetime":
		return fmt.Sprintf("Must be a date in format %s", err.Param())
	case "nefield":
		return fmt.Sprintf("Must differ from %s", strings.ToLower(err.Param()))
	case "numeric":
		return "Must contain only digits"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

func FormatValidationErrors(errors map[string]string) string {
	var msgs []string
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
