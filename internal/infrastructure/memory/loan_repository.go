package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/internal/domain/repository"
)

type LoanRepository struct {
	mu    sync.RWMutex
	seq   int64
	loans map[int64]entity.Loan
	users *UserRepository
	books *BookRepository
}

func NewLoanRepository(users *UserRepository, books *BookRepository) *LoanRepository {
	return &LoanRepository{
		loans: make(map[int64]entity.Loan),
		users: users,
		books: books,
	}
}

func (r *LoanRepository) Create(_ context.Context, l *entity.Loan) error {
	r.mu.Lock()
	r.seq++
	now := time.Now()
	l.ID = r.seq
	l.CreatedAt = now
	l.UpdatedAt = now
	stored := *l
	stored.Book, stored.Librarian, stored.Member = nil, nil, nil
	r.loans[l.ID] = stored
	r.mu.Unlock()
	return nil
}

func (r *LoanRepository) GetByID(_ context.Context, id int64) (*entity.Loan, error) {
	r.mu.RLock()
	l, ok := r.loans[id]
	r.mu.RUnlock()
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := l
	r.embed(&cp)
	return &cp, nil
}

func (r *LoanRepository) List(_ context.Context) ([]*entity.Loan, error) {
	r.mu.RLock()
	out := make([]*entity.Loan, 0, len(r.loans))
	for _, l := range r.loans {
		cp := l
		out = append(out, &cp)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].LoanAt.Equal(out[j].LoanAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].LoanAt.After(out[j].LoanAt)
	})
	for _, l := range out {
		r.embed(l)
	}
	return out, nil
}

// embed resolves relations without tombstone filtering, same as the SQL joins.
func (r *LoanRepository) embed(l *entity.Loan) {
	if b, ok := r.books.anyByID(l.BookID); ok {
		l.Book = b
	}
	if u, ok := r.users.anyByID(l.LibrarianID); ok {
		l.Librarian = u
	}
	if u, ok := r.users.anyByID(l.MemberID); ok {
		l.Member = u
	}
}

func (r *LoanRepository) Update(_ context.Context, l *entity.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.loans[l.ID]
	if !ok {
		return repository.ErrNotFound
	}
	l.UpdatedAt = time.Now()
	l.CreatedAt = current.CreatedAt
	stored := *l
	stored.Book, stored.Librarian, stored.Member = nil, nil, nil
	r.loans[l.ID] = stored
	return nil
}

func (r *LoanRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.loans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.loans, id)
	return nil
}

var _ repository.LoanRepository = (*LoanRepository)(nil)
