package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an id does not resolve to a live record.
var ErrNotFound = errors.New("record not found")

// ValidationError marks malformed input or a model constraint violation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
