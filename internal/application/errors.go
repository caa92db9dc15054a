package application

import (
	"errors"
	"fmt"
)

// Service-level failure taxonomy. Handlers map these onto HTTP statuses with
// errors.Is; messages travel to the client verbatim.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
	ErrNameTaken          = errors.New("category name already exists")
	ErrNotFound           = errors.New("not found")
	ErrNotLibrarian       = errors.New("user must be a librarian or admin")
)

func notFound(resource string, id int64) error {
	return fmt.Errorf("%s with id %d: %w", resource, id, ErrNotFound)
}
