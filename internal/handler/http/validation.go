// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that reports fields by their JSON names
// and knows the "bcryptlen" tag: a non-empty string of at most
// [crypto.MaxPasswordBytes] bytes.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registering a well-formed tag cannot fail
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		n := len(fl.Field().String())
		return n > 0 && n <= crypto.MaxPasswordBytes
	})

	return v
}

// validationDetail turns validator errors into a client-facing message.
// Field values are never echoed back.
func validationDetail(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid request body"
	}

	problems := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		problems = append(problems, fieldProblem(fieldErr))
	}

	return strings.Join(problems, "; ")
}

func fieldProblem(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s: field required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s: value is not a valid email address", fieldErr.Field())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "bcryptlen":
		return fmt.Sprintf("%s: must be between 1 and %d bytes", fieldErr.Field(), crypto.MaxPasswordBytes)
	default:
		return fmt.Sprintf("%s: invalid value", fieldErr.Field())
	}
}
