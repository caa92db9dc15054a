package repository

import (
	"context"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
)

// CategoryRepository defines database operations for categories.
// Reads exclude soft-deleted rows.
type CategoryRepository interface {
	Create(ctx context.Context, c *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
	SoftDelete(ctx context.Context, id int64) (*entity.Category, error)
}
