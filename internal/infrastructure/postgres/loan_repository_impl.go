package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/domain/repository"
)

// Loan reads join the book and both users without a tombstone filter: a loan
// referencing a since-deleted book or account still resolves its relations.
const loanSelect = `
	SELECT l.id, l.book_id, l.librarian_id, l.member_id, l.loan_at, l.returned_at, l.note,
	       l.created_at, l.updated_at,
	       b.id, b.title, b.description, b.authors, b.isbn, b.created_at, b.updated_at, b.deleted_at,
	       lib.id, lib.name, lib.email, lib.password, lib.phone, lib.address, lib.role,
	       lib.created_at, lib.updated_at, lib.deleted_at,
	       mem.id, mem.name, mem.email, mem.password, mem.phone, mem.address, mem.role,
	       mem.created_at, mem.updated_at, mem.deleted_at
	FROM loans l
	JOIN books b ON b.id = l.book_id
	JOIN users lib ON lib.id = l.librarian_id
	JOIN users mem ON mem.id = l.member_id`

type LoanRepository struct {
	pool *pgxpool.Pool
}

func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{pool: pool}
}

func scanLoan(row pgx.Row) (*entity.Loan, error) {
	l := &entity.Loan{
		Book:      &entity.Book{},
		Librarian: &entity.User{},
		Member:    &entity.User{},
	}
	b, lib, mem := l.Book, l.Librarian, l.Member
	err := row.Scan(&l.ID, &l.BookID, &l.LibrarianID, &l.MemberID, &l.LoanAt, &l.ReturnedAt, &l.Note,
		&l.CreatedAt, &l.UpdatedAt,
		&b.ID, &b.Title, &b.Description, &b.Authors, &b.ISBN, &b.CreatedAt, &b.UpdatedAt, &b.DeletedAt,
		&lib.ID, &lib.Name, &lib.Email, &lib.Password, &lib.Phone, &lib.Address, &lib.Role,
		&lib.CreatedAt, &lib.UpdatedAt, &lib.DeletedAt,
		&mem.ID, &mem.Name, &mem.Email, &mem.Password, &mem.Phone, &mem.Address, &mem.Role,
		&mem.CreatedAt, &mem.UpdatedAt, &mem.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *LoanRepository) Create(ctx context.Context, l *entity.Loan) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO loans (book_id, librarian_id, member_id, loan_at, returned_at, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, l.BookID, l.LibrarianID, l.MemberID, l.LoanAt, l.ReturnedAt, l.Note)

	if err := row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return mapError(err)
	}
	return nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*entity.Loan, error) {
	row := r.pool.QueryRow(ctx, loanSelect+`
		WHERE l.id = $1`, id)
	return scanLoan(row)
}

func (r *LoanRepository) List(ctx context.Context) ([]*entity.Loan, error) {
	rows, err := r.pool.Query(ctx, loanSelect+`
		ORDER BY l.loan_at DESC, l.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loans := make([]*entity.Loan, 0)
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *LoanRepository) Update(ctx context.Context, l *entity.Loan) error {
	l.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE loans
		SET book_id = $1, librarian_id = $2, member_id = $3, loan_at = $4, returned_at = $5, note = $6, updated_at = $7
		WHERE id = $8
	`, l.BookID, l.LibrarianID, l.MemberID, l.LoanAt, l.ReturnedAt, l.Note, l.UpdatedAt, l.ID)
	if err != nil {
		return mapError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *LoanRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.LoanRepository = (*LoanRepository)(nil)
