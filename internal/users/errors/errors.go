package errors

import "errors"

var (
	ErrNotFound = errors.New("user not found")

	ErrInvalidID = errors.New("invalid user ID format")

	// ErrDuplicate is the unique username or email index firing.
	ErrDuplicate = errors.New("username or email already taken")
)
