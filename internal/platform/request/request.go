// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and form
decoding, ensuring consistent error handling and type safety. Every submitted
text value is trimmed and normalized to Unicode NFC before it reaches the
service layer, so visually identical names are stored (and searched) identically.
*/
package requestutil

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"
	"golang.org/x/text/unicode/norm"

	"github.com/KonIngel/Fyyur/internal/platform/apperr"
	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/validate"
)

// formDecoder is safe for concurrent use once configured.
var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag("form")
	decoder.IgnoreUnknownKeys(true)

	// HTML checkboxes submit "on" (or "y" from older form libraries) when ticked
	// and nothing at all when not.
	decoder.RegisterConverter(false, func(raw string) reflect.Value {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "", "0", "f", "false", "n", "no", "off":
			return reflect.ValueOf(false)
		case "1", "t", "true", "y", "yes", "on":
			return reflect.ValueOf(true)
		default:
			return reflect.Value{}
		}
	})
	return decoder
}

/*
DecodeForm parses a url-encoded or multipart form body and decodes it into target.

Parameters:
  - request: *http.Request
  - target: any (Pointer to a struct with `form` tags)

Returns:
  - error: validate.ErrInvalidForm if the body is unreadable, a VALIDATION_ERROR
    listing the offending fields if values cannot be converted, otherwise nil
*/
func DecodeForm(request *http.Request, target any) error {
	if err := parseForm(request); err != nil {
		return validate.ErrInvalidForm
	}

	if err := formDecoder.Decode(target, Normalize(request.PostForm)); err != nil {
		return decodeError(err)
	}
	return nil
}

/*
FormValue returns the normalized value of a single submitted form field.

An absent field yields the empty string.
*/
func FormValue(request *http.Request, key string) string {
	if err := parseForm(request); err != nil {
		return ""
	}
	return Text(request.PostForm.Get(key))
}

/*
IntID retrieves a named integer URL parameter from the request.

A malformed or non-positive id cannot name any record, so it is reported as
NOT_FOUND for the given resource, exactly like an id with no matching row.
*/
func IntID(request *http.Request, name, resource string) (int, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(resource)
	}
	return id, nil
}

// Text trims s and normalizes it to Unicode NFC.
func Text(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Normalize returns a copy of values with every entry passed through [Text].
func Normalize(values url.Values) url.Values {
	normalized := make(url.Values, len(values))
	for key, entries := range values {
		cleaned := make([]string, len(entries))
		for i, entry := range entries {
			cleaned[i] = Text(entry)
		}
		normalized[key] = cleaned
	}
	return normalized
}

func parseForm(request *http.Request) error {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		err := request.ParseMultipartForm(constants.MaxFormMemory)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return err
		}
		return nil
	}
	return request.ParseForm()
}

// decodeError reports schema conversion failures as field-level validation errors.
func decodeError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return validate.ErrInvalidForm
	}

	fields := make([]string, 0, len(multi))
	for field := range multi {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]apperr.FieldError, 0, len(fields))
	for _, field := range fields {
		details = append(details, apperr.FieldError{Field: field, Message: "Is invalid"})
	}
	return apperr.ValidationError("Validation failed", details...)
}
