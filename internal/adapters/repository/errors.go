package repository

import (
	"errors"
	"fmt"
)

// Sentinel kinds for store errors.
var (
	// ErrValidation is the umbrella kind for rejected user input. The
	// specific sentinels below wrap it, so errors.Is works on either.
	ErrValidation = errors.New("validation failed")

	ErrNotFound = errors.New("record not found")

	// ErrSnapshot wraps snapshot read/write failures.
	ErrSnapshot = errors.New("snapshot persistence failed")
)

// Validation specifics.
var (
	ErrEmptyTitle       = fmt.Errorf("%w: title must not be empty", ErrValidation)
	ErrBadTimestamp     = fmt.Errorf("%w: timestamp must be RFC3339", ErrValidation)
	ErrEndNotAfterStart = fmt.Errorf("%w: event end must be after start", ErrValidation)
	ErrUnknownVenue     = fmt.Errorf("%w: venue does not exist", ErrValidation)
)
