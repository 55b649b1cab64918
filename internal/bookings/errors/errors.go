package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	ErrPropertyNotFound = errors.New("property not found")

	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateSlot is the unique (property, start, end) index firing.
	ErrDuplicateSlot = errors.New("booking with identical property and dates already exists")
)
