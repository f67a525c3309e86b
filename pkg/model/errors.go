package model

import (
	"errors"
	"fmt"
)

// ErrMissingField is matched by every MissingFieldError.
var ErrMissingField = errors.New("model: required field missing")

// MissingFieldError names a context field a template needed but did not
// find. It indicates a misconfigured build and must not be swallowed.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("model: required field %q missing", e.Field)
}

// Is lets errors.Is match ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Require returns value or a MissingFieldError naming field when the value is
// empty.
func Require(field, value string) (string, error) {
	if value == "" {
		return "", &MissingFieldError{Field: field}
	}
	return value, nil
}
