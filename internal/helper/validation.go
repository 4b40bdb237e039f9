package helper

import (
	"fmt"
	"strings"

	"github.com/mohadmed-adel/firebase-query-server/internal/model/data"

	ozzo "github.com/go-ozzo/ozzo-validation"
)

var Field = ozzo.Field

var errorMessages = map[string]string{
	"required": "%s harus diisi!",
	"date":     "Format %s tidak valid! (YYYY-MM-DD)",
	"numeric":  "%s harus berupa angka!",
}

func translateError(list map[string]string, field string, err error) data.ValidationErrorData {
	fieldName := getDisplayName(field, list)
	msg := err.Error()

	switch {
	case strings.Contains(msg, "cannot be blank"):
		msg = fmt.Sprintf(errorMessages["required"], fieldName)
	case strings.Contains(msg, "must be a valid date"):
		msg = fmt.Sprintf(errorMessages["date"], fieldName)
	case strings.Contains(msg, "must contain digits only"):
		msg = fmt.Sprintf(errorMessages["numeric"], fieldName)
	default:
		msg = fmt.Sprintf("Terjadi kesalahan pada %s", fieldName)
	}

	return data.ValidationErrorData{
		Field:   field,
		Message: msg,
	}
}

func getDisplayName(field string, list map[string]string) string {
	if name, exists := list[field]; exists {
		return name
	}
	return field
}

func ValidateStruct(list map[string]string, s interface{}, fields ...*ozzo.FieldRules) []data.ValidationErrorData {
	err := ozzo.ValidateStruct(s, fields...)
	if err == nil {
		return nil
	}

	var errors []data.ValidationErrorData
	if validationErrors, ok := err.(ozzo.Errors); ok {
		for field, err := range validationErrors {
			errors = append(errors, translateError(list, field, err))
		}
	}
	return errors
}
