package model

import (
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Validation errors
var (
	ErrInvalidInput    = goerr.New("invalid input")
	ErrMissingRequired = goerr.New("required field is missing")
)

// Context keys for error values
const (
	FieldKey    = "field"
	ExpectedKey = "expected"
	ActualKey   = "actual"
)

// ValidationDetail extracts the offending field name and its expected domain
// from a validation error. ok is false when err carries no field.
func ValidationDetail(err error) (field, expected string, ok bool) {
	for e := err; e != nil; e = errors.Unwrap(e) {
		ge, isGoErr := e.(*goerr.Error)
		if !isGoErr {
			continue
		}
		values := ge.Values()
		f, found := values[FieldKey]
		if !found {
			continue
		}
		field = fmt.Sprint(f)
		if exp, found := values[ExpectedKey]; found {
			expected = fmt.Sprint(exp)
		}
		return field, expected, true
	}
	return "", "", false
}

// IsValidationError reports whether err was caused by invalid caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrMissingRequired)
}

func invalidField(msg, field, expected string, actual any) error {
	return goerr.Wrap(ErrInvalidInput, msg,
		goerr.V(FieldKey, field),
		goerr.V(ExpectedKey, expected),
		goerr.V(ActualKey, actual))
}

// MissingField returns a validation error for an absent required field
func MissingField(field, expected string) error {
	return goerr.Wrap(ErrMissingRequired, "required field not provided",
		goerr.V(FieldKey, field),
		goerr.V(ExpectedKey, expected))
}

// InvalidField returns a validation error for a present but malformed field
func InvalidField(field, expected string, actual any) error {
	return invalidField("invalid field value", field, expected, actual)
}

// UnknownField returns a validation error for a field the request type does
// not define
func UnknownField(field string) error {
	return goerr.Wrap(ErrInvalidInput, "unknown field", goerr.V(FieldKey, field))
}
