package record

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a record is built without a name.
	ErrEmptyName = errors.New("name must not be empty")

	// ErrEmptyCategory is returned when a record is built without a category.
	ErrEmptyCategory = errors.New("category must not be empty")

	// ErrNegativeQuantity is returned for quantities below zero.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// ValidationError reports which field of a record failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
