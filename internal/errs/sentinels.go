// Package errs contains sentinel errors shared across layers so controllers
// can map failures to HTTP statuses with errors.Is.
package errs

import "errors"

var (
	// ErrNotFound indicates missing metadata or a missing byte object.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the filename is already taken in the byte store.
	ErrConflict = errors.New("already exists")

	// ErrForbidden indicates an ownership mismatch on a file operation.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidArgument indicates malformed or missing input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnauthorized indicates an invalid, inactive or unresolvable token,
	// or failed credentials at login.
	ErrUnauthorized = errors.New("unauthorized")
)
