package repository

import "errors"

var (
	// ErrNotFound is returned when the row does not exist or is soft-deleted.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on unique-constraint violations.
	ErrConflict = errors.New("conflict")
)
