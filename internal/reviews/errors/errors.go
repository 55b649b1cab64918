package errors

import "errors"

var (
	ErrNotFound = errors.New("review not found")

	ErrInvalidID = errors.New("invalid review ID format")

	ErrPropertyNotFound = errors.New("property not found")

	// ErrDuplicatePair is the unique (property, user) index firing.
	ErrDuplicatePair = errors.New("user has already reviewed this property")
)
