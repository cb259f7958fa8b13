package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrUnknownReference = errors.New("unknown reference")
	ErrSelfReference    = errors.New("self reference")
	ErrCycle            = errors.New("cycle detected")
	ErrNegativeValue    = errors.New("negative value")
	ErrEmptyValue       = errors.New("empty value")
)

// ValidationError reports a malformed input row.
type ValidationError struct {
	Relation string
	Key      interface{}
	Reason   string
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s[%v]: %v: %s", e.Relation, e.Key, e.Err, e.Reason)
	}
	return fmt.Sprintf("%s[%v]: %v", e.Relation, e.Key, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError builds a ValidationError wrapping one of the sentinel errors.
func NewValidationError(relation string, key interface{}, err error, reason string) *ValidationError {
	return &ValidationError{Relation: relation, Key: key, Reason: reason, Err: err}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
