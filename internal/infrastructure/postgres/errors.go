package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/library-management-api/internal/domain/repository"
)

const uniqueViolation = "23505"

// mapError translates driver-level failures into repository sentinels.
// Unique-constraint violations back the email/name uniqueness invariants
// under concurrent writes.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return repository.ErrConflict
	}
	return err
}
