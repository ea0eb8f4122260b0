package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCategory is returned when a category tag is not in the
	// known set.
	ErrInvalidCategory = errors.New("invalid category")
)
