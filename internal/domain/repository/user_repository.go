package repository

import (
	"context"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Reads exclude soft-deleted rows.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// EmailTaken reports whether a non-deleted user other than excludeID
	// already owns the email. Pass excludeID 0 to check against everyone.
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	SoftDelete(ctx context.Context, id int64) (*entity.User, error)
}
