// Package errs contains sentinel errors shared by repositories, services and handlers.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidReference indicates a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// ErrForbidden indicates the caller lacks the role or ownership for an action.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthorized indicates a missing, expired or invalid session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAccountDisabled indicates a deactivated user tried to use the API.
	ErrAccountDisabled = errors.New("account disabled")
)
