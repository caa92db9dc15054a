package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	repo "github.com/oksasatya/library-management-api/internal/domain/repository"
)

// LoanService implements loan CRUD with cross-entity reference checks.
// There is no availability or copy-count tracking: two outstanding loans for
// the same book are allowed.
type LoanService struct {
	Loans  repo.LoanRepository
	Books  repo.BookRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewLoanService(loans repo.LoanRepository, books repo.BookRepository, users repo.UserRepository, logger *logrus.Logger) *LoanService {
	return &LoanService{Loans: loans, Books: books, Users: users, Logger: logger}
}

type CreateLoanInput struct {
	BookID      int64
	LibrarianID int64
	MemberID    int64
	LoanAt      time.Time
	ReturnedAt  *time.Time
	Note        *string
}

// Create validates the three references in order, fail-fast, before any
// write: book, then librarian (existence, then role), then member. All
// checks are reads, so a failure leaves no partial state behind.
func (s *LoanService) Create(ctx context.Context, in CreateLoanInput) (*entity.Loan, error) {
	if err := s.checkBook(ctx, in.BookID); err != nil {
		return nil, err
	}
	if err := s.checkLibrarian(ctx, in.LibrarianID); err != nil {
		return nil, err
	}
	if err := s.checkMember(ctx, in.MemberID); err != nil {
		return nil, err
	}

	l := &entity.Loan{
		BookID:      in.BookID,
		LibrarianID: in.LibrarianID,
		MemberID:    in.MemberID,
		LoanAt:      in.LoanAt,
		ReturnedAt:  in.ReturnedAt,
		Note:        in.Note,
	}
	if err := s.Loans.Create(ctx, l); err != nil {
		return nil, err
	}
	return s.Loans.GetByID(ctx, l.ID)
}

func (s *LoanService) checkBook(ctx context.Context, id int64) error {
	if _, err := s.Books.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("book", id)
		}
		return err
	}
	return nil
}

func (s *LoanService) checkLibrarian(ctx context.Context, id int64) error {
	librarian, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("librarian", id)
		}
		return err
	}
	if !librarian.Role.CanLend() {
		return ErrNotLibrarian
	}
	return nil
}

func (s *LoanService) checkMember(ctx context.Context, id int64) error {
	if _, err := s.Users.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return notFound("member", id)
		}
		return err
	}
	return nil
}

func (s *LoanService) List(ctx context.Context) ([]*entity.Loan, error) {
	return s.Loans.List(ctx)
}

func (s *LoanService) Get(ctx context.Context, id int64) (*entity.Loan, error) {
	l, err := s.Loans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("loan", id)
		}
		return nil, err
	}
	return l, nil
}

type UpdateLoanInput struct {
	BookID      *int64
	LibrarianID *int64
	MemberID    *int64
	LoanAt      *time.Time
	// ReturnedAt is tri-state: absent leaves the return date alone, an
	// explicit null clears it (the loan becomes outstanding again).
	ReturnedAt NullableTime
	Note       *string
}

// Update applies only the provided fields. References are only re-validated
// when they actually change.
func (s *LoanService) Update(ctx context.Context, id int64, in UpdateLoanInput) (*entity.Loan, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.BookID != nil && *in.BookID != l.BookID {
		if err := s.checkBook(ctx, *in.BookID); err != nil {
			return nil, err
		}
		l.BookID = *in.BookID
	}
	if in.LibrarianID != nil && *in.LibrarianID != l.LibrarianID {
		if err := s.checkLibrarian(ctx, *in.LibrarianID); err != nil {
			return nil, err
		}
		l.LibrarianID = *in.LibrarianID
	}
	if in.MemberID != nil && *in.MemberID != l.MemberID {
		if err := s.checkMember(ctx, *in.MemberID); err != nil {
			return nil, err
		}
		l.MemberID = *in.MemberID
	}
	if in.LoanAt != nil {
		l.LoanAt = *in.LoanAt
	}
	if in.ReturnedAt.Set {
		l.ReturnedAt = in.ReturnedAt.Value
	}
	if in.Note != nil {
		l.Note = in.Note
	}

	if err := s.Loans.Update(ctx, l); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("loan", id)
		}
		return nil, err
	}
	return s.Loans.GetByID(ctx, id)
}

// Remove hard-deletes the loan and returns it as it was just before removal.
func (s *LoanService) Remove(ctx context.Context, id int64) (*entity.Loan, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Loans.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, notFound("loan", id)
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("loan_id", id).Info("loan deleted")
	}
	return l, nil
}
