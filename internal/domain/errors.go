package domain

import "errors"

var (
	// ErrNotFound indicates that no entity with the requested ID exists in
	// the document.
	ErrNotFound = errors.New("not found")

	// ErrInvalid indicates caller-supplied input that fails validation.
	ErrInvalid = errors.New("invalid")
)
