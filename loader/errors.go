// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMalformedRecord indicates a row with a missing, unparsable or out-of-range field.
	ErrMalformedRecord = errors.New("loader: malformed record")

	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("loader: missing column")

	// ErrRead indicates the underlying table could not be read.
	ErrRead = errors.New("loader: read failed")

	// ErrWrite indicates an output table could not be built or written.
	ErrWrite = errors.New("loader: write failed")
)

// validate is shared; validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// malformed wraps ErrMalformedRecord with the row and field that failed.
func malformed(row int, field string, format string, args ...any) error {
	return fmt.Errorf("%w: row %d: %s: %s", ErrMalformedRecord, row, field, fmt.Sprintf(format, args...))
}

// checkRow runs tag validation and reports the first failing field.
func checkRow(row int, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: row %d: %v", ErrMalformedRecord, row, err)
	}
	fe := verrs[0]

	return malformed(row, strings.ToLower(fe.Field()), "%s", describe(fe))
}

// describe turns a field error into a short message.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}
