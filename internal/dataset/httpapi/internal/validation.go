package internal

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"dataforge-server/internal/dataset/domain"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their json name and knows the
// "datatype" tag.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("datatype", func(fl validator.FieldLevel) bool {
		return domain.DataType(fl.Field().String()).IsValid()
	})
	return validate
}

// ValidationMessage turns the first validation failure into a user-facing sentence.
func ValidationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err.Error()
	}

	fe := validationErrors[0]
	name := fieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must contain at least %s item(s)", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
	case "datatype":
		return fmt.Sprintf("%s must be one of %s", name, joinDataTypes())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// fieldPath drops the struct name from a namespace like "ExportRequest.fields[0].type" and
// capitalizes the remainder.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		path = namespace
	}
	if path == "" {
		return path
	}
	return strings.ToUpper(path[:1]) + path[1:]
}

func joinDataTypes() string {
	types := domain.DataTypes()
	names := make([]string, len(types))
	for i, dataType := range types {
		names[i] = dataType.String()
	}
	return strings.Join(names, ", ")
}
