package repository

import (
	"context"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
)

// LoanRepository defines database operations for loans. Reads embed the
// related book, librarian and member regardless of their tombstone state.
// Loans are hard-deleted.
type LoanRepository interface {
	Create(ctx context.Context, l *entity.Loan) error
	GetByID(ctx context.Context, id int64) (*entity.Loan, error)
	List(ctx context.Context) ([]*entity.Loan, error)
	Update(ctx context.Context, l *entity.Loan) error
	Delete(ctx context.Context, id int64) error
}
