// Copyright (c) 2026 Fyyur. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer, never in handlers or
// storage. It ensures that business logic only operates on semantically valid data.
// Declarative rules live in struct tags and are checked by [Validator.Struct]
// through go-playground/validator; the chain methods cover rules that need
// runtime data (allowed choice lists, cross-field checks).
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/KonIngel/Fyyur/internal/platform/apperr"
)

var (
	// structValidator is safe for concurrent use and caches struct metadata.
	structValidator = newStructValidator()

	// ErrInvalidForm is returned when the request body cannot be decoded.
	ErrInvalidForm = apperr.ValidationError("Invalid form payload")
)

// newStructValidator reports field errors by their form name rather than the Go field name.
func newStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Struct runs the `validate` struct tags of target and records every failure.
func (v *Validator) Struct(target any) *Validator {
	err := structValidator.Struct(target)
	if err == nil {
		return v
	}

	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		v.add("_", "Invalid input")
		return v
	}

	for _, fieldError := range fieldErrors {
		v.add(fieldError.Field(), messageFor(fieldError))
	}
	return v
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// URL fails if a non-empty value is not an absolute http(s) URL.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}
	parsed, err := url.ParseRequestURI(value)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		v.add(field, "Must be a valid URL")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// EachOneOf fails once for every value that is not in the allowed set.
func (v *Validator) EachOneOf(field string, values []string, allowed ...string) *Validator {
	for _, value := range values {
		v.OneOf(field, value, allowed...)
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("start_time", start.IsZero(), "This field is required")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method. Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// messageFor renders a struct-tag failure in the same wording as the chain methods.
func messageFor(fieldError playground.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldError.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fieldError.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fieldError.Param())
	case "url", "http_url":
		return "Must be a valid URL"
	case "excludes":
		return fmt.Sprintf("Must not contain %q", fieldError.Param())
	default:
		return "Is invalid"
	}
}
