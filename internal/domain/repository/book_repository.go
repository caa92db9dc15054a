package repository

import (
	"context"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
)

// BookRepository defines database operations for books and their category
// associations. Reads exclude soft-deleted books; embedded categories are
// loaded alongside.
type BookRepository interface {
	// Create inserts the book and one join row per category id.
	Create(ctx context.Context, b *entity.Book, categoryIDs []int64) error
	GetByID(ctx context.Context, id int64) (*entity.Book, error)
	List(ctx context.Context) ([]*entity.Book, error)
	Update(ctx context.Context, b *entity.Book) error
	// ReplaceCategories drops every association for the book and inserts the
	// given set. An empty set leaves the book with no categories.
	ReplaceCategories(ctx context.Context, bookID int64, categoryIDs []int64) error
	SoftDelete(ctx context.Context, id int64) (*entity.Book, error)
}
