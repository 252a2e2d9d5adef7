package services

import "errors"

var (
	// ErrNotFound is returned when an account or invitation does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned for malformed roles, fields, filters or
	// form values.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when an action does not fit the current state,
	// such as resending an invitation that was already accepted.
	ErrConflict = errors.New("conflict")
)
