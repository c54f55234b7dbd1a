// File: validation.go
// Title: Struct Validation for Configuration Values
// Description: Validates decoded configuration structs with
//              go-playground/validator and maps the first failing field to
//              a VALIDATION_FAILED error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial rule-based validation
// - 2026-10-18 v0.2.0: Replaced rule maps with validator struct tags

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	ierror "github.com/msto63/istring/core/error"
	ierrors "github.com/msto63/istring/core/errors"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Validate checks v against its `validate` struct tags. The error names the
// first failing field by its json path, e.g. "log.level".
func Validate(v interface{}) error {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ierror.Wrap(err, "value cannot be validated").
			WithCode(ierror.CodeInvalidInput).
			WithOperation("config.Validate")
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ierror.Wrap(err, "validation failed").
			WithCode(ierror.CodeValidationFailed).
			WithOperation("config.Validate")
	}

	first := fieldErrs[0]
	verr := ierrors.ValidationFailed("config", fieldPath(first), first.Value(), describe(first))
	if len(fieldErrs) > 1 {
		verr = verr.WithDetail("failures", len(fieldErrs))
	}
	return verr
}

// fieldPath strips the root struct name from the namespace
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
